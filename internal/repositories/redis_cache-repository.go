package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	apperrors "medequip-system/pkg/errors"
)

type RedisCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisCacheRepository(client *redis.Client, logger *zap.Logger) CacheRepositoryInterface {
	return &RedisCacheRepository{client: client, logger: logger}
}

func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *RedisCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Increment bumps a counter, starting its expiry window on first use.
func (r *RedisCacheRepository) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			r.logger.Warn("failed to set counter expiry", zap.String("key", key), zap.Error(err))
		}
	}
	return count, nil
}
