package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/handler/http/response"
)

// RequireRole authorizes a request for the given roles. The token is
// verified against the user's stored record, not just its own claims: the
// account must still exist and its stored role must match the token role
// and be one of the allowed roles. On success the caller's identity is
// attached to the request context.
func RequireRole(users user.UserRepository, roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.Unauthorized(w, "Authorization token required")
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if token == nil {
				response.Unauthorized(w, "Authorization token required")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenRole, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			account, err := users.GetByID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if string(account.Role) != tokenRole {
				response.HandleError(w, auth.ErrRoleMismatch)
				return
			}

			allowed := false
			for _, role := range roles {
				if account.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				response.HandleError(w, auth.ErrInsufficientRole)
				return
			}

			identity := auth.Identity{
				ID:    account.ID,
				Email: account.Email,
				Role:  account.Role,
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
