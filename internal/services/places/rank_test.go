package places

import (
	"testing"
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func candidate(id, name, postcode string) mongodb.PlaceCandidateDb {
	return mongodb.PlaceCandidateDb{
		PlaceDb: mongodb.PlaceDb{
			Id:         id,
			Name:       name,
			SimpleName: name,
			Address:    mongodb.AddressDb{City: "sydney", Postcode: postcode},
			CreatedAt:  time.Now(),
		},
	}
}

func withMenu(c mongodb.PlaceCandidateDb, placeItemId, itemId, itemName string) mongodb.PlaceCandidateDb {
	c.Menu = append(c.Menu, mongodb.PlaceItemDb{
		Id:         placeItemId,
		PlaceId:    c.Id,
		ItemId:     itemId,
		Name:       itemName,
		SimpleName: itemName,
	})
	c.Catalog = append(c.Catalog, mongodb.ItemDb{Id: itemId, Name: itemName})
	return c
}

func withItemRating(c mongodb.PlaceCandidateDb, placeItemId string, taste float64) mongodb.PlaceCandidateDb {
	c.Ratings = append(c.Ratings, mongodb.RatingDb{
		Id:          "rating-" + placeItemId,
		PlaceId:     c.Id,
		PlaceItemId: strPtr(placeItemId),
		Taste:       floatPtr(taste),
		NoOfReviews: 10,
	})
	return c
}

func withPlaceRating(c mongodb.PlaceCandidateDb, service float64) mongodb.PlaceCandidateDb {
	c.Ratings = append(c.Ratings, mongodb.RatingDb{
		Id:          "rating-place-" + c.Id,
		PlaceId:     c.Id,
		Service:     floatPtr(service),
		NoOfReviews: 10,
	})
	return c
}

func TestRankOrdersByRatingPresence(t *testing.T) {
	// X has an item-level rating, Y only a place-level one, Z neither.
	x := withItemRating(withMenu(candidate("x", "Cafe X", "2000"), "pi-x", "i-x", "Pie"), "pi-x", 4.0)
	y := withPlaceRating(candidate("y", "Cafe Y", "2000"), 4.9)
	z := candidate("z", "Cafe Z", "2000")

	results := Rank([]mongodb.PlaceCandidateDb{z, y, x}, SearchParams{PlaceName: "cafe"})

	require.Len(t, results, 3)
	require.Equal(t, "x", results[0].Id)
	require.Equal(t, "y", results[1].Id)
	require.Equal(t, "z", results[2].Id)
}

func TestRankTasteBreaksTiesBeforeService(t *testing.T) {
	a := withMenu(candidate("a", "Cafe A", "2000"), "pi-a", "i-a", "Pie")
	a = withItemRating(a, "pi-a", 4.2)
	a = withPlaceRating(a, 2.0)

	b := withMenu(candidate("b", "Cafe B", "2000"), "pi-b", "i-b", "Pie")
	b = withItemRating(b, "pi-b", 4.8)
	b = withPlaceRating(b, 1.0)

	results := Rank([]mongodb.PlaceCandidateDb{a, b}, SearchParams{PlaceName: "cafe"})
	require.Equal(t, "b", results[0].Id)
	require.Equal(t, "a", results[1].Id)
}

func TestRankWholeWordItemMatch(t *testing.T) {
	// "ham" must match "Ham Sandwich" but never "Hamburger".
	sandwich := withMenu(candidate("p1", "Deli One", "2000"), "pi-1", "i-1", "Ham Sandwich")
	burger := withMenu(candidate("p2", "Deli Two", "2000"), "pi-2", "i-2", "Hamburger")

	results := Rank([]mongodb.PlaceCandidateDb{sandwich, burger}, SearchParams{PlaceName: "deli", ItemName: "ham"})

	require.Len(t, results, 1)
	require.Equal(t, "p1", results[0].Id)
	require.Len(t, results[0].MatchedItems, 1)
	require.Equal(t, "Ham Sandwich", results[0].MatchedItems[0].Name)
}

func TestRankPlaceNameWholeWord(t *testing.T) {
	// search(placeName="Cafe") keeps "Cafe Sydney" and "Central Cafe" but
	// not "Cafeteria".
	results := Rank([]mongodb.PlaceCandidateDb{
		candidate("p1", "Cafe Sydney", "2000"),
		candidate("p2", "Central Cafe", "2010"),
		candidate("p3", "Cafeteria", "2000"),
	}, SearchParams{PlaceName: "Cafe"})

	require.Len(t, results, 2)
	ids := []string{results[0].Id, results[1].Id}
	require.ElementsMatch(t, []string{"p1", "p2"}, ids)
}

func TestRankGeoFilterExcludesFarAndUnparseable(t *testing.T) {
	near := candidate("near", "Cafe Near", "2000")
	near.Address.Latitude = "-33.8688"
	near.Address.Longitude = "151.2093"

	far := candidate("far", "Cafe Far", "3000")
	far.Address.Latitude = "-37.8136" // Melbourne
	far.Address.Longitude = "144.9631"

	broken := candidate("broken", "Cafe Broken", "2000")
	broken.Address.Latitude = "???"
	broken.Address.Longitude = "151.0"

	lat, lon := -33.8688, 151.2093
	results := Rank([]mongodb.PlaceCandidateDb{near, far, broken}, SearchParams{
		PlaceName: "cafe",
		Latitude:  &lat,
		Longitude: &lon,
	})

	require.Len(t, results, 1)
	require.Equal(t, "near", results[0].Id)
	require.NotNil(t, results[0].DistanceMeters)
	require.Less(t, *results[0].DistanceMeters, 100.0)
}

func TestRankDeduplicatesMatchedItemsByCatalogItem(t *testing.T) {
	c := candidate("p1", "Cafe Twins", "2000")
	// Two menu entries referencing the same catalog item.
	c = withMenu(c, "pi-1", "i-1", "Flat White")
	c.Menu = append(c.Menu, mongodb.PlaceItemDb{
		Id: "pi-2", PlaceId: "p1", ItemId: "i-1", Name: "Flat White Large", SimpleName: "Flat White Large",
	})

	results := Rank([]mongodb.PlaceCandidateDb{c}, SearchParams{PlaceName: "cafe"})
	require.Len(t, results, 1)
	require.Len(t, results[0].MatchedItems, 1)
}

func TestSearchPagination(t *testing.T) {
	results := []Result{{Place: Place{Id: "1"}}, {Place: Place{Id: "2"}}, {Place: Place{Id: "3"}}}

	page := paginate(results, 2, 2)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 1, page.Size)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, 3, page.TotalResults)
	require.Equal(t, "3", page.Content[0].Id)

	empty := paginate(nil, 2, 5)
	require.Empty(t, empty.Content)
	require.Equal(t, 1, empty.TotalPages)
}
