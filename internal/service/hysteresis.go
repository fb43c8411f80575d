package service

import (
	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/geo"
	"github.com/shenikar/zone_presence_engine/internal/models"
)

// EvaluateMembership вычисляет новое множество зон присутствия для одного наблюдения.
// Эффективный радиус асимметричен: вход засчитывается сразу при пересечении номинальной
// границы (radius - entryBuffer), а выход требует оказаться за границей с запасом
// (radius + exitBuffer) - это гасит дребезг GPS у границы зоны.
// Функция чистая и идемпотентная: одинаковые (sample, zones, prior) дают одинаковый результат,
// что делает безопасным повтор оценки, когда callback региона и polled-фикс приходят
// для одного и того же физического момента.
func EvaluateMembership(sample models.LocationSample, zones []*models.ZoneDefinition, prior *models.PresenceState, entryBuffer, exitBuffer float64) []uuid.UUID {
	current := make([]uuid.UUID, 0, len(zones))
	for _, zone := range zones {
		distance := geo.DistanceMeters(sample.Latitude, sample.Longitude, zone.Latitude, zone.Longitude)

		wasInside := prior.Contains(zone.ID)
		effectiveRadius := zone.RadiusMeters - entryBuffer
		if wasInside {
			effectiveRadius = zone.RadiusMeters + exitBuffer
		}

		if distance <= effectiveRadius {
			current = append(current, zone.ID)
		}
	}
	return current
}

// DiffZones сравнивает новое множество зон с предыдущим.
// arrivals = next - prior, departures = prior - next. Порядок следования сохраняется.
func DiffZones(prior, next []uuid.UUID) (arrivals, departures []uuid.UUID) {
	priorSet := make(map[uuid.UUID]struct{}, len(prior))
	for _, id := range prior {
		priorSet[id] = struct{}{}
	}
	nextSet := make(map[uuid.UUID]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
	}

	arrivals = make([]uuid.UUID, 0)
	for _, id := range next {
		if _, ok := priorSet[id]; !ok {
			arrivals = append(arrivals, id)
		}
	}

	departures = make([]uuid.UUID, 0)
	for _, id := range prior {
		if _, ok := nextSet[id]; !ok {
			departures = append(departures, id)
		}
	}
	return arrivals, departures
}
