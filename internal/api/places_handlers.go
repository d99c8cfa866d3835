package api

import (
	"encoding/json"
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/generics"
	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/places"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Home",
	})
}

func (api *API) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	query := r.URL.Query()

	params := places.SearchParams{
		PlaceName:  query.Get("placeName"),
		ItemName:   query.Get("itemName"),
		Postcode:   query.Get("postcode"),
		City:       query.Get("city"),
		Suburbs:    parseCsvQuery(query.Get("suburbs")),
		Latitude:   generics.StringToFloatPtr(query.Get("latitude")),
		Longitude:  generics.StringToFloatPtr(query.Get("longitude")),
		DistanceKm: generics.StringToFloatPtr(query.Get("distance")),
		PageSize:   generics.StringToInt(query.Get("size")),
		PageNumber: generics.StringToInt(query.Get("page")),
	}

	pageOfResults, err := places.Search(api.Db, r.Context(), params)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(places.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to search places")
		return
	}

	respondWithJSON(w, http.StatusOK, pageOfResults)
}

func (api *API) AddPlace(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req places.NewPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	place, err := places.AddPlace(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(places.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error adding place")
		return
	}

	respondWithJSON(w, http.StatusCreated, place)
}

func (api *API) GetPlaceById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	placeId := r.PathValue("id")
	if placeId == "" {
		respondWithError(w, http.StatusBadRequest, "Place id is required")
		return
	}

	place, err := places.GetPlaceById(api.Db, r.Context(), placeId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Place not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting place")
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}
