package models

import (
	"time"

	"github.com/google/uuid"
)

// PresenceState - долговременная запись "в каких зонах пользователь находится сейчас".
// Перезаписывается целиком при каждой успешной оценке; переживает перезапуск процесса.
type PresenceState struct {
	UserID       string      `json:"user_id"`
	CurrentZones []uuid.UUID `json:"current_zones"`
	EvaluatedAt  time.Time   `json:"evaluated_at"`
	// Initialized означает "выполнена хотя бы одна успешная оценка с момента старта движка";
	// используется для подавления ложных событий прибытия при холодном старте.
	Initialized bool `json:"initialized"`
}

// Contains сообщает, входит ли зона в текущее множество присутствия
func (p *PresenceState) Contains(zoneID uuid.UUID) bool {
	if p == nil {
		return false
	}
	for _, id := range p.CurrentZones {
		if id == zoneID {
			return true
		}
	}
	return false
}
