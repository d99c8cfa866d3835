package reviews

import (
	"errors"
	"net/http"
)

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrChildTargetMissing = errors.New("child review needs an item id or place item id")
	ErrInvalidRatingValue = errors.New("sub-ratings must be between 1 and 5")
)

var ErrorMap = map[error]int{
	ErrPlaceNotFound:      http.StatusNotFound,
	ErrCustomerNotFound:   http.StatusNotFound,
	ErrReviewNotFound:     http.StatusNotFound,
	ErrChildTargetMissing: http.StatusBadRequest,
	ErrInvalidRatingValue: http.StatusBadRequest,
}

func validRating(value *float64) bool {
	return value == nil || (*value >= 1 && *value <= 5)
}

func validRatings(values ...*float64) bool {
	for _, value := range values {
		if !validRating(value) {
			return false
		}
	}
	return true
}
