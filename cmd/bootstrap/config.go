package bootstrap

import (
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const minJWTSecretLen = 32

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig refuses a short JWT secret unless gin runs in debug mode.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if gin.Mode() != gin.DebugMode && len(cfg.JWT.Secret) < minJWTSecretLen {
		return config.Config{}, errs.Newf("JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	return cfg, nil
}
