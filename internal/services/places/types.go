package places

import (
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

// SearchParams carries the pre-validated inputs of a place search. Optional
// inputs are empty strings / nil pointers.
type SearchParams struct {
	PlaceName  string
	ItemName   string
	Postcode   string
	City       string
	Suburbs    []string
	Latitude   *float64
	Longitude  *float64
	DistanceKm *float64
	PageSize   int
	PageNumber int
}

// HasGeo reports whether the request carries a usable coordinate pair.
func (p SearchParams) HasGeo() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Place is the API view of a place record.
type Place struct {
	Id           string                  `json:"id"`
	Name         string                  `json:"name"`
	Aliases      []string                `json:"aliases"`
	Address      mongodb.AddressDb       `json:"address"`
	OpeningTimes []mongodb.OpeningTimeDb `json:"openingTimes"`
	Media        []string                `json:"media"`
	FriendlyTags mongodb.FriendlyTagsDb  `json:"friendlyTags"`
}

// MatchedItem is one menu entry surfaced by a search, with its catalog
// item and item-scoped rating when one exists.
type MatchedItem struct {
	ItemId      string             `json:"itemId"`
	PlaceItemId string             `json:"placeItemId"`
	Name        string             `json:"name"`
	Course      string             `json:"course"`
	Cuisines    []string           `json:"cuisines"`
	Diet        int                `json:"diet"`
	Price       float64            `json:"price"`
	Rating      *ratings.Aggregate `json:"rating"`
}

// Result is one ranked search hit: the place, its place-level rating, and
// the menu entries that matched (deduplicated by catalog item).
type Result struct {
	Place
	Rating         *ratings.Aggregate `json:"rating"`
	MatchedItems   []MatchedItem      `json:"matchedItems"`
	DistanceMeters *float64           `json:"distanceMeters,omitempty"`
}

type NewPlaceRequest struct {
	Name         string                  `json:"name"`
	Aliases      []string                `json:"aliases"`
	Address      mongodb.AddressDb       `json:"address"`
	OpeningTimes []mongodb.OpeningTimeDb `json:"openingTimes"`
	Media        []string                `json:"media"`
	FriendlyTags mongodb.FriendlyTagsDb  `json:"friendlyTags"`
}
