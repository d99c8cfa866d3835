package places

import (
	"errors"
	"net/http"
)

var (
	ErrMissingSearchInput = errors.New("a place name or an address filter (city, suburb, postcode or coordinates) is required")
	ErrPlaceNameRequired  = errors.New("place name is required")
	ErrPlaceNotFound      = errors.New("place not found")
)

var ErrorMap = map[error]int{
	ErrMissingSearchInput: http.StatusBadRequest,
	ErrPlaceNameRequired:  http.StatusBadRequest,
	ErrPlaceNotFound:      http.StatusNotFound,
}
