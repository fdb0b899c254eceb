package auth

import "github.com/peopledesk/peopledesk-backend-go/internal/domain/user"

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshToken          string `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at,omitempty"`
}

type LoginResponse struct {
	User   user.UserResponse `json:"user"`
	Tokens TokenResponse     `json:"tokens"`
}
