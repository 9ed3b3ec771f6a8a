package dto

import (
	"strings"
	"time"

	authModel "grahafitness_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

func FromUser(u authModel.UserModel) UserResponse {
	name := u.DisplayName
	if name == "" {
		name = u.UserName
	}
	return UserResponse{
		ID:          u.ID.String(),
		Username:    u.UserName,
		Role:        string(u.Role),
		DisplayName: name,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
