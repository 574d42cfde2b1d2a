package core_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/metrics"
	"youngeru/pkg/utils"
)

// Module supplies the config, logger, metrics and JWT manager. main
// provides *config.Config and *zap.Logger with fx.Supply.
var Module = fx.Provide(
	provideMetrics,
	provideJWTManager,
)

func provideMetrics() *metrics.Metrics {
	return metrics.New()
}

func provideJWTManager(cfg *config.Config, log *zap.Logger) (*utils.JWTManager, error) {
	m, err := utils.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		log.Error("JWT_SECRET must be set")
		return nil, err
	}
	return m, nil
}
