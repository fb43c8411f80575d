package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationIntent - намерение отправить push-уведомление.
// Передается внешнему диспетчеру через очередь; дублирование подавляется по DedupKey.
type NotificationIntent struct {
	RecipientID string        `json:"recipient_id"`
	ActorID     string        `json:"actor_id"`
	ZoneID      uuid.UUID     `json:"zone_id"`
	DedupKey    string        `json:"dedup_key"`
	Message     string        `json:"message"`
	TTL         time.Duration `json:"ttl"`
	CreatedAt   time.Time     `json:"created_at"`
}

// DedupKeyFor собирает ключ дедупликации из получателя, актора и зоны
func DedupKeyFor(recipientID, actorID string, zoneID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", recipientID, actorID, zoneID.String())
}
