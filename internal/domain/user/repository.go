package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// UpdateRefreshToken stores (or clears, when nil) the user's refresh token.
	UpdateRefreshToken(ctx context.Context, id string, token *string) error
}
