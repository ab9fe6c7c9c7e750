//go:build unit || e2e

package builder

import (
	reqdto "groundio/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	Role        string
	DisplayName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "player@example.com",
		Password:    "Passw0rd!",
		Role:        "customer",
		DisplayName: "Asha Rao",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:       a.Email,
		Password:    a.Password,
		Role:        a.Role,
		DisplayName: a.DisplayName,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) AsMerchant() *AuthBuilder {
	a.Role = "merchant"
	a.Email = "owner@example.com"
	a.DisplayName = "Turf Owner"
	return a
}
