package usecase

import (
	"groundio/internal/domain/user"
	"groundio/internal/pkg/jwt"
	"groundio/internal/pkg/session"
)

// TokenValidator turns an access token into the request principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (session.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken rejects refresh tokens so they cannot authorize API calls.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (session.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return session.Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return session.Principal{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return session.Principal{}, err
	}

	return session.Principal{UserID: claims.UserID, Role: role}, nil
}
