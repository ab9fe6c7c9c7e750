package request

import (
	"groundio/internal/usecase/commands"
)

// Password strength is checked by the domain so the rule lives in one place.
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"omitempty,oneof=customer merchant"`
	DisplayName string `json:"display_name" binding:"omitempty,max=80"`
}

func (r *SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		DisplayName: r.DisplayName,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
