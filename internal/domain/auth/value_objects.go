package auth

import (
	"groundio/internal/domain/user"
)

// Credentials are what a sign-in presents.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewLoginPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is a validated signup; every check here runs before any store call.
type Registration struct {
	email       user.Email
	password    user.Password
	role        user.Role
	displayName user.DisplayName
}

func NewRegistration(emailStr, passwordStr, roleStr, displayNameStr string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}
	if roleStr == "" {
		roleStr = user.RoleCustomer.String()
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return Registration{}, err
	}
	if displayNameStr == "" {
		displayNameStr = email.Value()
	}
	name, err := user.NewDisplayName(displayNameStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{email: email, password: password, role: role, displayName: name}, nil
}

func (r Registration) Email() user.Email             { return r.email }
func (r Registration) Password() user.Password       { return r.password }
func (r Registration) Role() user.Role               { return r.role }
func (r Registration) DisplayName() user.DisplayName { return r.displayName }
