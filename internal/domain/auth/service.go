package auth

import (
	"context"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req user.RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
	// LoginWithGoogle issues tokens for the existing account matching a
	// verified Google email. Unknown emails are not auto-provisioned.
	LoginWithGoogle(ctx context.Context, googleEmail string) (LoginResponse, error)
}
