package geo

import "math"

// earthRadiusMeters - средний радиус Земли
const earthRadiusMeters = 6371000.0

const metersPerMile = 1609.344

// DistanceMeters возвращает расстояние по дуге большого круга между двумя точками (haversine).
// Точность достаточна для радиусов зон от десятков до тысяч метров.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// MilesToMeters переводит мили в метры
func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

// MetersToMiles переводит метры в мили
func MetersToMiles(meters float64) float64 {
	return meters / metersPerMile
}

// ValidCoordinates проверяет, что координаты конечны и лежат в допустимых диапазонах
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
