package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneDefinition представляет круговую географическую зону, определенную пользователем
type ZoneDefinition struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	OwnerID      string    `json:"owner_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	MemberIDs    []string  `json:"member_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
