package reviews

import (
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

// ChildReviewRequest is one per-item review submitted together with its
// parent. The target menu entry is given directly or resolved from the
// catalog item id at creation time.
type ChildReviewRequest struct {
	PlaceItemId  string   `json:"placeItemId"`
	ItemId       string   `json:"itemId"`
	Taste        *float64 `json:"taste"`
	Presentation *float64 `json:"presentation"`
	Service      *float64 `json:"service"`
	Ambience     *float64 `json:"ambience"`
	Description  string   `json:"description"`
	Media        []string `json:"media"`
}

// NewReviewRequest creates one parent review, optionally with per-item
// child reviews, in a single customer action.
type NewReviewRequest struct {
	PlaceId      string               `json:"placeId"`
	CustomerId   string               `json:"customerId"`
	Taste        *float64             `json:"taste"`
	Presentation *float64             `json:"presentation"`
	Service      *float64             `json:"service"`
	Ambience     *float64             `json:"ambience"`
	Description  string               `json:"description"`
	Media        []string             `json:"media"`
	Children     []ChildReviewRequest `json:"children"`
}

// Review is the API view of a review, with children inlined when the
// thread was requested.
type Review struct {
	Id           string    `json:"id"`
	PlaceId      string    `json:"placeId"`
	PlaceItemId  *string   `json:"placeItemId"`
	CustomerId   string    `json:"customerId"`
	Taste        *float64  `json:"taste"`
	Presentation *float64  `json:"presentation"`
	Service      *float64  `json:"service"`
	Ambience     *float64  `json:"ambience"`
	Description  string    `json:"description"`
	Helpful      int       `json:"helpful"`
	NotHelpful   int       `json:"notHelpful"`
	Media        []string  `json:"media"`
	ParentId     *string   `json:"parentId,omitempty"`
	Children     []Review  `json:"children,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ChildFailure records one child review that could not be created; its
// siblings are unaffected.
type ChildFailure struct {
	ItemId      string `json:"itemId,omitempty"`
	PlaceItemId string `json:"placeItemId,omitempty"`
	Reason      string `json:"reason"`
}

// SubmissionResult is the outcome of a review submission: the created
// parent (with created children inlined) plus any isolated child failures.
type SubmissionResult struct {
	Review   Review         `json:"review"`
	Failures []ChildFailure `json:"failures,omitempty"`
}

type VoteRequest struct {
	Helpful    bool `json:"helpful"`
	NotHelpful bool `json:"notHelpful"`
}

func MapDbReviewToApiReview(review mongodb.ReviewDb) Review {
	return Review{
		Id:           review.Id,
		PlaceId:      review.PlaceId,
		PlaceItemId:  review.PlaceItemId,
		CustomerId:   review.CustomerId,
		Taste:        review.Taste,
		Presentation: review.Presentation,
		Service:      review.Service,
		Ambience:     review.Ambience,
		Description:  review.Description,
		Helpful:      review.Helpful,
		NotHelpful:   review.NotHelpful,
		Media:        review.Media,
		ParentId:     review.ParentId,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}
