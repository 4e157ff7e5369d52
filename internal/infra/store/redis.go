package store

import (
	"context"
	"errors"
	"log/slog"

	"blane-checkout/internal/infra"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the transaction cache with redis. Values have no TTL:
// the schema removes records only on an explicit new-transaction reset.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "redis get "+key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "redis set "+key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "redis del "+key, err)
	}
	return nil
}
