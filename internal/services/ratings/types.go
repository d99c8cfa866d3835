package ratings

import "time"

// Scope identifies which aggregate a recompute targets: a whole place when
// PlaceItemId is nil, otherwise one menu entry.
type Scope struct {
	PlaceId     string
	PlaceItemId *string
}

func (s Scope) ItemScoped() bool {
	return s.PlaceItemId != nil
}

// Key returns a stable string form of the scope, used to deduplicate the
// scopes affected by a multi-item review submission.
func (s Scope) Key() string {
	if s.PlaceItemId == nil {
		return s.PlaceId
	}
	return s.PlaceId + "/" + *s.PlaceItemId
}

// Aggregate is the API view of a rating aggregate.
type Aggregate struct {
	Id               string    `json:"id"`
	PlaceId          string    `json:"placeId"`
	PlaceItemId      *string   `json:"placeItemId"`
	Taste            *float64  `json:"taste"`
	Presentation     *float64  `json:"presentation"`
	Service          *float64  `json:"service"`
	Ambience         *float64  `json:"ambience"`
	NoOfReviews      int       `json:"noOfReviews"`
	NoOfReviewPhotos int       `json:"noOfReviewPhotos"`
	CreatedAt        time.Time `json:"createdAt"`
	ModifiedAt       time.Time `json:"modifiedAt"`
}
