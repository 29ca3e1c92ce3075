package config_fx

import (
	"go.uber.org/fx"
	"wanderwise/pkg/config"
	"wanderwise/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideTokenIssuer)

func provideTokenIssuer(cfg config.App) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())
}
