package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	d := DistanceMeters(42.36, -71.06, 42.36, -71.06)
	assert.Equal(t, 0.0, d)
}

func TestDistanceMeters_OneDegreeLatitude(t *testing.T) {
	// Один градус широты - примерно 111.19 км на сфере радиусом 6371 км
	d := DistanceMeters(42.0, -71.0, 43.0, -71.0)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestDistanceMeters_KnownCityPair(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км по прямой
	d := DistanceMeters(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634000, d, 5000)
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := DistanceMeters(42.36, -71.06, 55.75, 37.61)
	b := DistanceMeters(55.75, 37.61, 42.36, -71.06)
	assert.Equal(t, a, b)
}

func TestMilesToMeters(t *testing.T) {
	assert.InDelta(t, 1609.344, MilesToMeters(1), 1e-9)
	assert.InDelta(t, 804.672, MilesToMeters(0.5), 1e-9)
}

func TestMetersToMiles(t *testing.T) {
	assert.InDelta(t, 1.0, MetersToMiles(1609.344), 1e-9)
	// Туда и обратно без потерь
	assert.InDelta(t, 42.0, MetersToMiles(MilesToMeters(42.0)), 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"valid point", 42.36, -71.06, true},
		{"zero zero", 0, 0, true},
		{"boundary values", 90, 180, true},
		{"negative boundary", -90, -180, true},
		{"latitude too big", 90.001, 0, false},
		{"longitude too big", 0, 180.001, false},
		{"latitude NaN", math.NaN(), 0, false},
		{"longitude NaN", 0, math.NaN(), false},
		{"latitude Inf", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinates(tt.lat, tt.lon))
		})
	}
}
