package popular

import (
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

// Params carries the pre-validated inputs of a popularity query. City is
// required unless another address filter or a coordinate pair is present.
type Params struct {
	City       string
	Postcode   string
	Suburb     string
	Diets      []int
	Latitude   *float64
	Longitude  *float64
	DistanceKm *float64
}

func (p Params) HasGeo() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Item is one entry of the popular-items list: the menu entry, its place
// and catalog item, and the item-scoped aggregate that ranked it.
type Item struct {
	PlaceItemId string            `json:"placeItemId"`
	ItemId      string            `json:"itemId"`
	PlaceId     string            `json:"placeId"`
	Name        string            `json:"name"`
	PlaceName   string            `json:"placeName"`
	Suburb      string            `json:"suburb"`
	Diet        int               `json:"diet"`
	Price       float64           `json:"price"`
	Media       string            `json:"media,omitempty"`
	Rating      ratings.Aggregate `json:"rating"`
}

// Place is one entry of the popular-places list.
type Place struct {
	PlaceId string            `json:"placeId"`
	Name    string            `json:"name"`
	Address mongodb.AddressDb `json:"address"`
	Rating  ratings.Aggregate `json:"rating"`
}

// Feed is the response of a popularity query: up to 6 items followed by up
// to 2 places. The two lists are concatenated, never merged by a unified
// score.
type Feed struct {
	Items  []Item  `json:"items"`
	Places []Place `json:"places"`
}

const (
	maxItems  = 6
	maxPlaces = 2
)
