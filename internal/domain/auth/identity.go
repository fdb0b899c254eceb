package auth

import (
	"context"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
)

// Identity is the authenticated caller attached to a request context
// after the guard has verified the token against the stored user.
type Identity struct {
	ID    string
	Email string
	Role  user.Role
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
