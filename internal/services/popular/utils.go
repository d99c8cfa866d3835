package popular

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingLocation rejects a popularity query before any store access
	// when no city, postcode, suburb or coordinates narrow it.
	ErrMissingLocation = errors.New("a city, postcode, suburb or coordinate pair is required")
)

var ErrorMap = map[error]int{
	ErrMissingLocation: http.StatusBadRequest,
}
