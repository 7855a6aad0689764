// Package geo provides great-circle distance calculations on a spherical
// Earth. The sphere is an accepted approximation for this project;
// ellipsoidal corrections are deliberately not applied.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius in kilometres.
const EarthRadiusKm = 6371.0088

// Haversine returns the great-circle distance in kilometres between two
// WGS84 coordinates, assuming a perfect sphere of mean Earth radius.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
