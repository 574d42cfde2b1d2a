package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/infra"
	"youngeru/internal/repositories"
	mem "youngeru/pkg/memcache"
)

const sweepInterval = time.Minute

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.SessionStore, error) {
	var store mem.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		client, err := infra.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		store = repositories.NewRedisSessionStore(client, cfg.Session.TTL)
	default:
		store = mem.NewMemorySessions(cfg.Session.TTL, sweepInterval)
	}
	log.Info("quiz session store ready", zap.String("backend", cfg.Session.Backend), zap.Duration("ttl", cfg.Session.TTL))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return store.Close() },
	})
	return store, nil
}
