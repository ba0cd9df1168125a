package bootstrap

import (
	"plateshare-server/internal/pkg/config"
	"plateshare-server/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService returns nil when no secret is configured, which leaves
// bearer tokens ignored and the email query parameter as the only identity.
func NewJWTService(cfg config.Config) *jwt.Service {
	if !cfg.JWT.Enabled() {
		return nil
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}
