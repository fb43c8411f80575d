package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/service"
)

// SampleDTOToModel преобразует DTO polled-фикса в доменную модель наблюдения
func SampleDTOToModel(dto SubmitSampleRequest) models.LocationSample {
	sample := models.LocationSample{
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
		Source:         models.SourcePolledFix,
	}
	if dto.CapturedAt != nil {
		sample.CapturedAt = *dto.CapturedAt
	} else {
		sample.CapturedAt = time.Now().UTC()
	}
	return sample
}

// RegionEventDTOToModel преобразует DTO callback-а региона в доменную модель наблюдения
func RegionEventDTOToModel(dto RegionEventRequest, zoneID uuid.UUID) models.LocationSample {
	source := models.SourceRegionEnter
	if dto.Event == "exit" {
		source = models.SourceRegionExit
	}
	sample := models.LocationSample{
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		AccuracyMeters: dto.AccuracyMeters,
		Source:         source,
		TriggerZoneID:  &zoneID,
	}
	if dto.CapturedAt != nil {
		sample.CapturedAt = *dto.CapturedAt
	} else {
		sample.CapturedAt = time.Now().UTC()
	}
	return sample
}

// StateToPresenceResponse преобразует состояние присутствия в DTO для ответа
func StateToPresenceResponse(state *models.PresenceState) PresenceResponse {
	zones := state.CurrentZones
	if zones == nil {
		zones = []uuid.UUID{}
	}
	return PresenceResponse{
		UserID:       state.UserID,
		CurrentZones: zones,
		EvaluatedAt:  state.EvaluatedAt,
		Initialized:  state.Initialized,
	}
}

// ResultToEvaluationResponse преобразует итог прохода оценки в DTO для ответа
func ResultToEvaluationResponse(result *service.EvaluationResult) EvaluationResponse {
	return EvaluationResponse{
		State:      StateToPresenceResponse(result.State),
		Arrivals:   transitionsToResponses(result.Arrivals),
		Departures: transitionsToResponses(result.Departures),
	}
}

func transitionsToResponses(events []models.TransitionEvent) []TransitionResponse {
	responses := make([]TransitionResponse, len(events))
	for i, event := range events {
		responses[i] = TransitionResponse{
			ZoneID:     event.ZoneID,
			Direction:  string(event.Direction),
			ObservedAt: event.ObservedAt,
		}
	}
	return responses
}

// ZonesToResponses преобразует слайс зон в слайс DTO
func ZonesToResponses(zones []*models.ZoneDefinition) []ZoneResponse {
	responses := make([]ZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ZoneResponse{
			ID:           zone.ID,
			Name:         zone.Name,
			Latitude:     zone.Latitude,
			Longitude:    zone.Longitude,
			RadiusMeters: zone.RadiusMeters,
		}
	}
	return responses
}
