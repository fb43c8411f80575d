package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zone_presence_engine/internal/models"
)

const (
	intentQueueKey = "notification_intents"
)

// IntentPublisher - интерфейс для публикации намерений уведомлений
type IntentPublisher interface {
	Publish(ctx context.Context, intent models.NotificationIntent) error
}

// RedisIntentPublisher - реализация IntentPublisher, использующая Redis
type RedisIntentPublisher struct {
	redisClient *redis.Client
}

// NewRedisIntentPublisher создает новый RedisIntentPublisher
func NewRedisIntentPublisher(client *redis.Client) *RedisIntentPublisher {
	return &RedisIntentPublisher{
		redisClient: client,
	}
}

// Publish публикует намерение уведомления в очередь Redis
func (p *RedisIntentPublisher) Publish(ctx context.Context, intent models.NotificationIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal notification intent: %w", err)
	}

	// Используем LPUSH для добавления намерения в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, intentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification intent to Redis: %w", err)
	}
	return nil
}
