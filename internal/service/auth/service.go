package auth

import (
	"context"
	"errors"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}
	hashStr := string(hash)

	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleUser
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         role,
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

// Login implements auth.AuthService. Unknown emails and wrong passwords
// report the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	// OAuth-only accounts have no password hash
	if account.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, account)
}

// Refresh implements auth.AuthService. Tokens rotate on every refresh;
// a refresh token that does not match the stored one is rejected.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req user.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := s.jwtService.DecodeRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefresh
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidRefresh
		}
		return auth.TokenResponse{}, err
	}

	if account.RefreshToken == nil || *account.RefreshToken != req.RefreshToken {
		return auth.TokenResponse{}, auth.ErrInvalidRefresh
	}

	login, err := s.issueTokens(ctx, account)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return login.Tokens, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	return s.UserRepository.UpdateRefreshToken(ctx, userID, nil)
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(account), nil
}

// LoginWithGoogle implements auth.AuthService. Only accounts that already
// exist can sign in; an unknown Google email is not provisioned.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.LoginResponse, error) {
	account, err := s.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	return s.issueTokens(ctx, account)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, account user.User) (auth.LoginResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := s.UserRepository.UpdateRefreshToken(ctx, account.ID, &refreshToken); err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: user.ToResponse(account),
		Tokens: auth.TokenResponse{
			AccessToken:           accessToken,
			AccessTokenExpiresAt:  accessExpiresAt,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresAt: refreshExpiresAt,
		},
	}, nil
}
