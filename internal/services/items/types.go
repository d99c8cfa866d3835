package items

import (
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

// Item is the API view of a catalog entry.
type Item struct {
	Id       string            `json:"id"`
	Name     string            `json:"name"`
	Aliases  []string          `json:"aliases"`
	Cuisines []string          `json:"cuisines"`
	Course   string            `json:"course"`
	Dietary  mongodb.DietaryDb `json:"dietary"`
	Media    string            `json:"media,omitempty"`
}

type NewItemRequest struct {
	Name     string            `json:"name"`
	Aliases  []string          `json:"aliases"`
	Cuisines []string          `json:"cuisines"`
	Course   string            `json:"course"`
	Dietary  mongodb.DietaryDb `json:"dietary"`
	Media    string            `json:"media"`
}

type NewPlaceItemRequest struct {
	PlaceId     string             `json:"placeId"`
	ItemId      string             `json:"itemId"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Ingredients []string           `json:"ingredients"`
	Allergens   []string           `json:"allergens"`
	Calories    mongodb.CaloriesDb `json:"calories"`
	Popularity  string             `json:"popularity"`
}

// LocateRef identifies the item to locate: a catalog item id, or one exact
// menu entry.
type LocateRef struct {
	ItemId      string
	PlaceItemId string
}

// OfferingReview is a review shown on an offering, with the reviewer
// reduced to the minimal projection (never contact fields).
type OfferingReview struct {
	Id           string                     `json:"id"`
	Taste        *float64                   `json:"taste"`
	Presentation *float64                   `json:"presentation"`
	Service      *float64                   `json:"service"`
	Ambience     *float64                   `json:"ambience"`
	Description  string                     `json:"description"`
	Helpful      int                        `json:"helpful"`
	NotHelpful   int                        `json:"notHelpful"`
	Media        []string                   `json:"media"`
	Customer     *mongodb.CustomerSummaryDb `json:"customer,omitempty"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// Offering is one place serving the located item: the place, the resolved
// menu entry and catalog item, its aggregate, and a page of reviews.
type Offering struct {
	PlaceId     string             `json:"placeId"`
	PlaceName   string             `json:"placeName"`
	Address     mongodb.AddressDb  `json:"address"`
	PlaceItemId string             `json:"placeItemId"`
	Price       float64            `json:"price"`
	Diet        int                `json:"diet"`
	Item        Item               `json:"item"`
	Rating      *ratings.Aggregate `json:"rating"`
	Reviews     []OfferingReview   `json:"reviews"`
}
