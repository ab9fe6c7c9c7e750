package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters with upper, lower, digit and special characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrInvalidDisplayName = errors.New("display name must be 1-80 characters")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72 // bcrypt input limit
	MaxDisplayNameLen = 80
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

// NewPassword enforces the signup strength rule.
func NewPassword(s string) (Password, error) {
	if len(s) > MaxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	if !IsStrongPassword(s) {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

// NewLoginPassword only rejects empty input; strength is checked at signup.
func NewLoginPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func IsStrongPassword(s string) bool {
	if len([]rune(s)) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

type DisplayName struct {
	value string
}

func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > MaxDisplayNameLen {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: s}, nil
}

func (n DisplayName) String() string { return n.value }

type Phone struct {
	value string
}

// NewPhone strips spaces and dashes before matching.
func NewPhone(s string) (Phone, error) {
	s = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
