package api

import (
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/services/customers"
)

func (api *API) GetCustomers(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	response, err := customers.GetAllCustomers(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	if len(response.Customers) == 0 {
		respondWithError(w, http.StatusNotFound, "No customers found")
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}
