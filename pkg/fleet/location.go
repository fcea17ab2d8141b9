package fleet

import "math"

// Mean Earth radius in kilometres, for the spherical approximation.
const earthRadiusKM = 6371.0

type Location struct {
	Type        string    `json:"-"`
	Coordinates []float64 `json:"coordinates"`
}

func (l *Location) Longitude() float64 {
	return l.Coordinates[0]
}

func (l *Location) Latitude() float64 {
	return l.Coordinates[1]
}

// DistanceFrom returns the great-circle distance in kilometres between the
// two locations using the haversine formula. Haversine rather than a planar
// approximation as the error of the latter grows too large past ~1km, and
// consecutive telemetry points can be kilometres apart under sparse sampling.
func (l *Location) DistanceFrom(other *Location) float64 {
	lat1 := radians(l.Latitude())
	lat2 := radians(other.Latitude())
	deltaLat := radians(other.Latitude() - l.Latitude())
	deltaLon := radians(other.Longitude() - l.Longitude())

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
