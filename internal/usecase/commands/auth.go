package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"groundio/internal/domain/auth"
	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/jwt"
	"groundio/internal/pkg/session"
	"groundio/internal/usecase/queries"
	"groundio/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type SignupInput struct {
	Email       string
	Password    string
	Role        string
	DisplayName string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*LoginResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, principal session.Principal)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     PasswordHasher
	hub        *session.Hub
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher PasswordHasher,
	hub *session.Hub,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
		hub:        hub,
		clock:      clk,
	}
}

// Signup validates everything before touching the store, then signs the new user in.
func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*LoginResult, error) {
	reg, err := auth.NewRegistration(in.Email, in.Password, in.Role, in.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := a.hasher.Hash(reg.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Email(), hash, reg.Role(), reg.DisplayName(), a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Users().Create(ctx, tx.DB(), u); createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, errs.ErrEmailTaken)
			}
			return createErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.signIn(ctx, u.ID(), u.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	result, err := a.signIn(ctx, userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID, a.clock.Now()); updateErr != nil {
			slog.WarnContext(ctx, "failed to update last login", "user_id", userView.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only the last_login stamp is lost
		slog.WarnContext(ctx, "transaction failed during login", "user_id", userView.ID, "error", err.Error())
	}

	return result, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

// Logout is stateless on the token side; it only notifies session subscribers.
func (a *authCommandsImpl) Logout(ctx context.Context, principal session.Principal) {
	a.hub.Publish(session.Event{
		Kind:   session.EventSignedOut,
		UserID: principal.UserID,
		Role:   principal.Role,
		At:     a.clock.Now(),
	})
	slog.InfoContext(ctx, "user signed out", "user_id", principal.UserID)
}

func (a *authCommandsImpl) signIn(ctx context.Context, userID uuid.UUID, role user.Role) (*LoginResult, error) {
	pair, err := a.issueTokens(userID, role)
	if err != nil {
		return nil, err
	}

	a.hub.Publish(session.Event{
		Kind:   session.EventSignedIn,
		UserID: userID,
		Role:   role,
		At:     a.clock.Now(),
	})
	slog.InfoContext(ctx, "user signed in", "user_id", userID, "role", role)

	return &LoginResult{UserID: userID, Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.UserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err = a.hasher.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
