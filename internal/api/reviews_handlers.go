package api

import (
	"encoding/json"
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/auth"
	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/services/reviews"
)

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req reviews.NewReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.PlaceId == "" {
		respondWithError(w, http.StatusBadRequest, "Field placeId is required")
		return
	}

	// The reviewer is the authenticated customer, never a body field.
	customer := auth.GetCustomerFromContext(r.Context())
	if customer == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	req.CustomerId = customer.Id

	result, err := reviews.Submit(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error adding review")
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}

func (api *API) GetReviewById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	reviewId := r.PathValue("id")
	if reviewId == "" {
		respondWithError(w, http.StatusBadRequest, "Review id is required")
		return
	}

	review, err := reviews.GetReviewWithThread(api.Db, r.Context(), reviewId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error while getting review")
		return
	}

	respondWithJSON(w, http.StatusOK, review)
}

func (api *API) VoteReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	reviewId := r.PathValue("id")
	if reviewId == "" {
		respondWithError(w, http.StatusBadRequest, "Review id is required")
		return
	}

	var req reviews.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if !req.Helpful && !req.NotHelpful {
		respondWithError(w, http.StatusBadRequest, "One of the fields helpful or notHelpful must be set")
		return
	}

	review, err := reviews.Vote(api.Db, r.Context(), reviewId, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error updating review votes")
		return
	}

	respondWithJSON(w, http.StatusOK, review)
}
