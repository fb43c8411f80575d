package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/geo"
	"github.com/shenikar/zone_presence_engine/internal/models"
)

// SelectActiveZones выбирает подмножество зон для регистрации в платформенном
// мониторинге регионов. Платформа принимает не более maxRegions одновременно
// активных регионов; остальные зоны оцениваются только по polled-фиксам.
//
// Правила выбора:
//   - зоны, в которых пользователь находится сейчас, закреплены и не вытесняются;
//   - оставшиеся слоты заполняются ближайшими к последней известной точке;
//   - при равных расстояниях сохраняется порядок каталога (стабильная сортировка).
func SelectActiveZones(zones []*models.ZoneDefinition, lastLat, lastLon float64, occupied []uuid.UUID, maxRegions int) []*models.ZoneDefinition {
	if maxRegions <= 0 || len(zones) <= maxRegions {
		return zones
	}

	occupiedSet := make(map[uuid.UUID]struct{}, len(occupied))
	for _, id := range occupied {
		occupiedSet[id] = struct{}{}
	}

	pinned := make([]*models.ZoneDefinition, 0, len(occupied))
	rest := make([]*models.ZoneDefinition, 0, len(zones))
	for _, zone := range zones {
		if _, ok := occupiedSet[zone.ID]; ok {
			pinned = append(pinned, zone)
		} else {
			rest = append(rest, zone)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		di := geo.DistanceMeters(lastLat, lastLon, rest[i].Latitude, rest[i].Longitude)
		dj := geo.DistanceMeters(lastLat, lastLon, rest[j].Latitude, rest[j].Longitude)
		return di < dj
	})

	slots := maxRegions - len(pinned)
	if slots < 0 {
		slots = 0
	}
	if slots > len(rest) {
		slots = len(rest)
	}

	selected := make([]*models.ZoneDefinition, 0, maxRegions)
	selected = append(selected, pinned...)
	selected = append(selected, rest[:slots]...)
	return selected
}
