package dedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dedup:"

// RedisCache - реализация Cache на ключах Redis с TTL.
// Рост кэша ограничен самим TTL: протухшие ключи Redis удаляет сам.
type RedisCache struct {
	client *redis.Client
	window time.Duration
}

// NewRedisCache создает кэш дедупликации поверх Redis
func NewRedisCache(client *redis.Client, window time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		window: window,
	}
}

// ShouldSuppress атомарно записывает отметку времени ключа и возвращает true,
// если предыдущая отметка еще не протухла. SET ... GET EX обновляет TTL
// при каждой проверке независимо от результата.
func (c *RedisCache) ShouldSuppress(ctx context.Context, key string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := c.client.SetArgs(ctx, redisKeyPrefix+key, now, redis.SetArgs{
		TTL: c.window,
		Get: true,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Предыдущего значения не было - первый раз внутри окна
			return false, nil
		}
		return false, fmt.Errorf("failed to check dedup key in Redis: %w", err)
	}
	return true, nil
}
