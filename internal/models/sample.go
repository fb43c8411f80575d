package models

import (
	"time"

	"github.com/google/uuid"
)

// SampleSource - источник наблюдения местоположения
type SampleSource string

const (
	// SourcePolledFix - периодический GPS-фикс (foreground/background polling)
	SourcePolledFix SampleSource = "polled_fix"
	// SourceRegionEnter - callback ОС о входе в отслеживаемый регион
	SourceRegionEnter SampleSource = "region_enter"
	// SourceRegionExit - callback ОС о выходе из отслеживаемого региона
	SourceRegionExit SampleSource = "region_exit"
)

// LocationSample представляет одно наблюдение местоположения пользователя.
// Эфемерно: потребляется ровно один раз за проход оценки и никогда не сохраняется.
type LocationSample struct {
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	AccuracyMeters *float64     `json:"accuracy_meters,omitempty"`
	CapturedAt     time.Time    `json:"captured_at"`
	Source         SampleSource `json:"source"`
	// TriggerZoneID заполняется только для событий region_enter/region_exit
	TriggerZoneID *uuid.UUID `json:"trigger_zone_id,omitempty"`
}
