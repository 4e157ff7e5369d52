package bootstrap

import (
	"context"
	"log/slog"

	"blane-checkout/internal/infra/store"
	"blane-checkout/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore backs the transaction cache with redis when an address is
// configured, otherwise with the in-process store.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) store.Store {
	if cfg.Redis.Addr == "" {
		logger.Info("transaction store: in-memory (no REDIS_ADDR configured)")
		return store.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("transaction store: redis", "addr", cfg.Redis.Addr)
	return store.NewRedisStore(client, logger)
}
