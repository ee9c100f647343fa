package geo

import "math"

// EarthRadiusKM is Earth's radius in kilometers for the haversine formula.
const EarthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance in kilometers between two
// coordinates given in degrees. Inputs are assumed to be valid lat/lng
// ranges; out-of-range values are the caller's problem.
func DistanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
