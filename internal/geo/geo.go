// Package geo вычисляет расстояния между географическими точками
// по формуле гаверсинусов. Используется для проверки радиуса доставки
// и для группировки близких заказов в одну поездку.
package geo

import (
	"math"

	"pharmago/internal/entities"
)

// EarthRadiusKm — средний радиус Земли.
const EarthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу в километрах.
// Чистая функция: симметрична, DistanceKm(a, a) == 0.
func DistanceKm(a, b entities.GeoPoint) (float64, error) {
	if !a.InRange() || !b.InRange() {
		return 0, ErrInvalidCoordinate
	}

	lat1 := toRadians(a.Lat)
	lng1 := toRadians(a.Lng)
	lat2 := toRadians(b.Lat)
	lng2 := toRadians(b.Lng)

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	centralAngle := 2 * math.Asin(math.Sqrt(h))

	return centralAngle * EarthRadiusKm, nil
}

// IsWithinRange сообщает, находятся ли две точки в пределах thresholdKm
// друг от друга.
func IsWithinRange(a, b entities.GeoPoint, thresholdKm float64) (bool, error) {
	distance, err := DistanceKm(a, b)
	if err != nil {
		return false, err
	}
	return distance <= thresholdKm, nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
