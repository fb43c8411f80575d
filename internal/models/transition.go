package models

import (
	"time"

	"github.com/google/uuid"
)

// TransitionDirection - направление перехода границы зоны
type TransitionDirection string

const (
	DirectionArrival   TransitionDirection = "arrival"
	DirectionDeparture TransitionDirection = "departure"
)

// TransitionEvent - производное событие пересечения границы зоны.
// Не сохраняется: немедленно потребляется стадией fan-out.
type TransitionEvent struct {
	ZoneID     uuid.UUID           `json:"zone_id"`
	Direction  TransitionDirection `json:"direction"`
	ObservedAt time.Time           `json:"observed_at"`
}
