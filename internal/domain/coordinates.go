package domain

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
	// AverageSpeedKmh approximates urban sightseeing travel; there is no road network.
	AverageSpeedKmh = 40.0
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// TravelMinutes estimates whole minutes needed to cover the straight-line
// distance between a and b at AverageSpeedKmh.
func TravelMinutes(a, b Coordinates) int {
	return int(math.Floor(DistanceKm(a, b) / AverageSpeedKmh * 60))
}

// Mean returns the arithmetic mean of the given points. The zero value is
// returned for an empty slice.
func Mean(points []Coordinates) Coordinates {
	if len(points) == 0 {
		return Coordinates{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}
	n := float64(len(points))
	return Coordinates{Lat: sumLat / n, Lon: sumLon / n}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
