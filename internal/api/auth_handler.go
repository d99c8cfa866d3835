package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/services/customers"
	"go.mongodb.org/mongo-driver/mongo"
)

func (api *API) SignupHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req customers.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		respondWithError(w, http.StatusBadRequest, "Field username cannot be null")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respondWithError(w, http.StatusBadRequest, "Field email cannot be null")
		return
	}

	customer, err := customers.Signup(api.Db, r.Context(), req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondWithError(w, http.StatusBadRequest, "Username or email already taken")
			return
		}
		if statusCode, ok := getErrorStatusCode(customers.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating customer")
		return
	}

	respondWithJSON(w, http.StatusCreated, customer)
}

func (api *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req customers.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		respondWithError(w, http.StatusBadRequest, "Field username cannot be null")
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		respondWithError(w, http.StatusBadRequest, "Field password cannot be null")
		return
	}

	response, err := customers.Login(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(customers.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}
