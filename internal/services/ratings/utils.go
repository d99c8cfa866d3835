package ratings

import (
	"errors"
	"net/http"
)

var (
	// ErrScopeResolution means no menu entry maps the requested (place, item)
	// pair, so there is no aggregate to recompute.
	ErrScopeResolution = errors.New("no place item found for the requested place and item")
)

var ErrorMap = map[error]int{
	ErrScopeResolution: http.StatusNotFound,
}
