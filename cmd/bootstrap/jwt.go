package bootstrap

import (
	"time"

	"groundio/internal/pkg/config"
	"groundio/internal/pkg/errs"
	"groundio/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService fails startup when a refresh token would not outlive the access token.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "parse JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "parse JWT_REFRESH_TOKEN_DURATION")
	}
	if refresh <= access {
		return nil, errs.Newf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed JWT_ACCESS_TOKEN_DURATION (%s)", refresh, access)
	}

	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
