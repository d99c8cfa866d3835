package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Sydney CBD and Parramatta, roughly 20 km apart.
const (
	sydLat = -33.8688
	sydLon = 151.2093
	parLat = -33.8150
	parLon = 151.0011
)

func TestDistanceSymmetry(t *testing.T) {
	d1 := Distance(sydLat, sydLon, parLat, parLon)
	d2 := Distance(parLat, parLon, sydLat, sydLon)
	require.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceToSelfIsZero(t *testing.T) {
	require.Zero(t, Distance(sydLat, sydLon, sydLat, sydLon))
}

func TestDistanceKnownPair(t *testing.T) {
	d := Distance(sydLat, sydLon, parLat, parLon)
	// Sydney CBD to Parramatta is around 20 km.
	require.Greater(t, d, 18000.0)
	require.Less(t, d, 22000.0)
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"-33.8688", -33.8688, true},
		{" 151.2093 ", 151.2093, true},
		{"", 0, false},
		{"not-a-number", 0, false},
		{"NaN", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseCoord(tc.raw)
		require.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			require.Equal(t, tc.want, got, "raw=%q", tc.raw)
		}
	}
}

func TestWithinRadius(t *testing.T) {
	// Parramatta is ~20km from the CBD: inside a 25km radius, outside 10km.
	require.True(t, WithinRadius("-33.8150", "151.0011", sydLat, sydLon, 25))
	require.False(t, WithinRadius("-33.8150", "151.0011", sydLat, sydLon, 10))

	// Malformed coordinates are excluded, never treated as distance zero.
	require.False(t, WithinRadius("", "151.0011", sydLat, sydLon, 1000))
	require.False(t, WithinRadius("abc", "151.0011", sydLat, sydLon, 1000))
}

func TestWithinRadiusGraceKilometer(t *testing.T) {
	// The cutoff is radius+1 km, so a point just beyond the requested
	// radius but inside the grace kilometer still qualifies.
	d := Distance(sydLat, sydLon, parLat, parLon) / 1000 // km
	require.True(t, WithinRadius("-33.8150", "151.0011", sydLat, sydLon, d-0.5))
	require.False(t, WithinRadius("-33.8150", "151.0011", sydLat, sydLon, d-1.5))
}
