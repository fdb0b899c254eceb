package auth

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrRoleMismatch       = errors.New("token role does not match stored role")
	ErrInsufficientRole   = errors.New("insufficient permissions")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
)
