package v1

import (
	"time"

	"github.com/google/uuid"
)

// SubmitSampleRequest DTO для периодического GPS-фикса
// @Description DTO для периодического GPS-фикса
type SubmitSampleRequest struct {
	UserID         string     `json:"user_id" validate:"required"`
	Latitude       float64    `json:"latitude" validate:"latitude"`
	Longitude      float64    `json:"longitude" validate:"longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	CapturedAt     *time.Time `json:"captured_at,omitempty"`
}

// RegionEventRequest DTO для callback-а платформенного мониторинга регионов
// @Description DTO для callback-а платформенного мониторинга регионов
type RegionEventRequest struct {
	UserID         string     `json:"user_id" validate:"required"`
	ZoneID         string     `json:"zone_id" validate:"required"`
	Event          string     `json:"event" validate:"required,oneof=enter exit"`
	Latitude       float64    `json:"latitude" validate:"latitude"`
	Longitude      float64    `json:"longitude" validate:"longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	CapturedAt     *time.Time `json:"captured_at,omitempty"`
}

// PresenceResponse DTO для ответа с состоянием присутствия
// @Description DTO для ответа с состоянием присутствия
type PresenceResponse struct {
	UserID       string      `json:"user_id"`
	CurrentZones []uuid.UUID `json:"current_zones"`
	EvaluatedAt  time.Time   `json:"evaluated_at"`
	Initialized  bool        `json:"initialized"`
}

// TransitionResponse DTO для события пересечения границы зоны
// @Description DTO для события пересечения границы зоны
type TransitionResponse struct {
	ZoneID     uuid.UUID `json:"zone_id"`
	Direction  string    `json:"direction"`
	ObservedAt time.Time `json:"observed_at"`
}

// EvaluationResponse DTO для итога прохода оценки
// @Description DTO для итога прохода оценки
type EvaluationResponse struct {
	State      PresenceResponse     `json:"state"`
	Arrivals   []TransitionResponse `json:"arrivals"`
	Departures []TransitionResponse `json:"departures"`
}

// ZoneResponse DTO для зоны активного набора мониторинга
// @Description DTO для зоны активного набора мониторинга
type ZoneResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
}
