package user

import "time"

type User struct {
	ID                   string
	Name                 string
	Email                string
	PasswordHash         *string
	Role                 Role
	Active               bool
	RefreshToken         *string
	ResetPasswordToken   *string
	ResetPasswordExpires *time.Time
	OAuthProvider        *string
	OAuthProviderID      *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Role string

const (
	RoleUser Role = "USER"
	RoleHR   Role = "HR"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleHR
}
