package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/generics"
	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/items"
)

func (api *API) AddItem(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req items.NewItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	item, err := items.AddItem(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(items.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error adding item")
		return
	}

	respondWithJSON(w, http.StatusCreated, item)
}

func (api *API) GetItemById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	itemId := r.PathValue("id")
	if itemId == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	item, err := items.GetItemById(api.Db, r.Context(), itemId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Item with id %s not found", itemId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting item")
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

func (api *API) AddPlaceItem(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req items.NewPlaceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.PlaceId == "" || req.ItemId == "" {
		respondWithError(w, http.StatusBadRequest, "Fields placeId and itemId are required")
		return
	}

	placeItem, err := items.AddPlaceItem(api.Db, r.Context(), req)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "Place or item not found")
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error adding menu entry")
		return
	}

	respondWithJSON(w, http.StatusCreated, placeItem)
}

// GetItemPlaces lists the places offering a catalog item, each with its
// menu entry, aggregate and one page of reviews.
func (api *API) GetItemPlaces(w http.ResponseWriter, r *http.Request) {
	itemId := r.PathValue("id")
	if itemId == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}
	api.locatePlaces(w, r, items.LocateRef{ItemId: itemId})
}

// GetPlaceItemPlaces is the same lookup keyed by one exact menu entry.
func (api *API) GetPlaceItemPlaces(w http.ResponseWriter, r *http.Request) {
	placeItemId := r.PathValue("id")
	if placeItemId == "" {
		respondWithError(w, http.StatusBadRequest, "Place item id is required")
		return
	}
	api.locatePlaces(w, r, items.LocateRef{PlaceItemId: placeItemId})
}

func (api *API) locatePlaces(w http.ResponseWriter, r *http.Request, ref items.LocateRef) {
	logger := logx.FromContext(r.Context())

	page := generics.StringToInt(r.URL.Query().Get("page"))
	size := generics.StringToInt(r.URL.Query().Get("size"))

	offerings, err := items.Locate(api.Db, r.Context(), ref, page, size)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, "No places found offering this item")
			return
		}
		if statusCode, ok := getErrorStatusCode(items.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to locate item")
		return
	}

	respondWithJSON(w, http.StatusOK, offerings)
}
