package geo

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the sphere radius used by the haversine formula.
const EarthRadiusKm = 6372.8

// Distance returns the great-circle distance in meters between two points
// given in decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dLon/2), 2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a)) * 1000
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ParseCoord parses a stored coordinate string. Coordinates are imported
// from external sources and are not guaranteed to be clean, so parsing is
// permissive: an empty or unparseable value reports ok=false rather than
// zero, and the caller excludes the record from geo filtering.
func ParseCoord(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// WithinRadius reports whether the candidate coordinates (stored as strings)
// fall within radiusKm+1 km of the requested point. Candidates with missing
// or malformed coordinates never qualify.
func WithinRadius(candLat, candLon string, lat, lon, radiusKm float64) bool {
	parsedLat, ok := ParseCoord(candLat)
	if !ok {
		return false
	}
	parsedLon, ok := ParseCoord(candLon)
	if !ok {
		return false
	}
	return Distance(lat, lon, parsedLat, parsedLon) <= (radiusKm+1)*1000
}
