package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/zone_presence_engine/internal/config"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// PushWorker - структура для обработки очереди намерений и доставки их диспетчеру push-уведомлений
type PushWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewPushWorker создает новый PushWorker
func NewPushWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *PushWorker {
	return &PushWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди намерений
func (w *PushWorker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, intentQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop notification intent from Redis")
					time.Sleep(w.cfg.PushTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var intent models.NotificationIntent
				if err := json.Unmarshal([]byte(payload), &intent); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification intent from Redis")
					continue
				}

				w.deliverIntent(ctx, intent, payload)
			}
		}
	}()
}

// deliverIntent отправляет намерение внешнему диспетчеру push-уведомлений.
// Ошибка доставки нефатальна: повторы ограничены, откатов состояния нет -
// допустимый режим отказа это пропущенное уведомление, а не дублированное.
func (w *PushWorker) deliverIntent(ctx context.Context, intent models.NotificationIntent, rawPayload string) {
	log := w.logger.WithField("recipient_id", intent.RecipientID).WithField("dedup_key", intent.DedupKey)
	log.Debug("Delivering notification intent...")

	if w.cfg.PushDispatcherURL == "" {
		log.Warn("Push dispatcher URL is not configured. Skipping notification delivery.")
		return
	}

	maxRetries := w.cfg.PushMaxRetries
	baseDelay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.PushDispatcherURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create push request for intent. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если PUSH_SECRET задан
		if w.cfg.PushSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.PushSecret)
			req.Header.Set("X-Push-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send notification intent. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Notification intent delivered successfully.")
			return
		}

		log.Warnf("Push delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver notification intent after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
