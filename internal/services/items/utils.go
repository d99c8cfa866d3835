package items

import (
	"errors"
	"net/http"
)

var (
	ErrItemNameRequired = errors.New("item name is required")
	ErrItemNotFound     = errors.New("item not found")
	ErrLocateRefMissing = errors.New("an item id or place item id is required")
)

var ErrorMap = map[error]int{
	ErrItemNameRequired: http.StatusBadRequest,
	ErrItemNotFound:     http.StatusNotFound,
	ErrLocateRefMissing: http.StatusBadRequest,
}

const (
	defaultReviewPageSize = 5
	maxReviewPageSize     = 50
)

// reviewPage normalizes pagination inputs into a skip/limit pair.
func reviewPage(page, size int) (skip, limit int64) {
	if size <= 0 {
		size = defaultReviewPageSize
	}
	if size > maxReviewPageSize {
		size = maxReviewPageSize
	}
	if page <= 0 {
		page = 1
	}
	return int64(page-1) * int64(size), int64(size)
}
