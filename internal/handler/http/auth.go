package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/handler/http/response"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/oauth"
)

const oauthStateCookie = "oauth_state"

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.AuthService
	googleService oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &authHandlerImpl{
		authService:   authService,
		googleService: googleService,
	}
}

// Register implements AuthHandler
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered", result)
}

// Login implements AuthHandler
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Refresh implements AuthHandler
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req user.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authorization token required")
		return
	}

	if err := h.authService.Logout(r.Context(), identity.ID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authorization token required")
		return
	}

	result, err := h.authService.Me(r.Context(), identity.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LoginWithGoogle implements AuthHandler - redirects to the Google consent page
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState()
	if state == "" {
		response.InternalServerError(w, "Failed to start OAuth flow")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler. Only existing accounts with
// a verified Google email can sign in.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	token, err := h.googleService.Exchange(r.Context(), code)
	if err != nil {
		response.Unauthorized(w, "OAuth code exchange failed")
		return
	}

	account, err := h.googleService.FetchUser(r.Context(), token)
	if err != nil {
		response.Unauthorized(w, "Failed to fetch Google account")
		return
	}
	if !account.VerifiedEmail {
		response.Forbidden(w, "Google email is not verified")
		return
	}

	result, err := h.authService.LoginWithGoogle(r.Context(), account.Email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}
