package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchRejectsEmptyInput(t *testing.T) {
	// The nil store proves validation rejects the request before any
	// database access: a store hit would panic.
	_, err := Search(nil, context.Background(), SearchParams{})
	require.ErrorIs(t, err, ErrMissingSearchInput)

	_, err = Search(nil, context.Background(), SearchParams{PageSize: 10, PageNumber: 2})
	require.ErrorIs(t, err, ErrMissingSearchInput)
}

func TestAddressFilterDefaultsToCity(t *testing.T) {
	filter := AddressFilter(SearchParams{})

	city, ok := filter["address.city"].(bson.M)
	require.True(t, ok)
	require.Equal(t, "^sydney$", city["$regex"])
	require.Equal(t, "i", city["$options"])
	require.NotContains(t, filter, "address.suburb")
	require.NotContains(t, filter, "address.postcode")
}

func TestAddressFilterSuburbsAndPostcode(t *testing.T) {
	filter := AddressFilter(SearchParams{
		City:     "Sydney",
		Suburbs:  []string{"Parramatta", " Ryde "},
		Postcode: "2150",
	})

	suburb, ok := filter["address.suburb"].(bson.M)
	require.True(t, ok)
	require.Equal(t, "^(Parramatta|Ryde)$", suburb["$regex"])
	require.Equal(t, "2150", filter["address.postcode"])
}

func TestAddressFilterQuotesUserInput(t *testing.T) {
	// Regex metacharacters in user input must be treated literally.
	filter := AddressFilter(SearchParams{City: "syd.*ney", Suburbs: []string{"a|b"}})

	city := filter["address.city"].(bson.M)
	require.Equal(t, `^syd\.\*ney$`, city["$regex"])

	suburb := filter["address.suburb"].(bson.M)
	require.Equal(t, `^(a\|b)$`, suburb["$regex"])
}

func TestAddressFilterGeoOnlyRequiresCoordinates(t *testing.T) {
	lat, lon := -33.8688, 151.2093
	filter := AddressFilter(SearchParams{Latitude: &lat, Longitude: &lon, City: "sydney"})

	// With coordinates the radius is applied after projection; the store
	// only pre-filters to places that carry coordinates at all.
	require.NotContains(t, filter, "address.city")
	require.Contains(t, filter, "address.latitude")
	require.Contains(t, filter, "address.longitude")
}
