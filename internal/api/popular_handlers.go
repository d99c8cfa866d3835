package api

import (
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/generics"
	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/services/popular"
)

func (api *API) GetPopular(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	query := r.URL.Query()

	params := popular.Params{
		City:       query.Get("city"),
		Postcode:   query.Get("postcode"),
		Suburb:     query.Get("suburb"),
		Diets:      parseDietCodes(query.Get("diets")),
		Latitude:   generics.StringToFloatPtr(query.Get("latitude")),
		Longitude:  generics.StringToFloatPtr(query.Get("longitude")),
		DistanceKm: generics.StringToFloatPtr(query.Get("distance")),
	}

	feed, err := popular.Popular(api.Db, r.Context(), params)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(popular.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to build popular feed")
		return
	}

	respondWithJSON(w, http.StatusOK, feed)
}
