package server

import (
	"log"
	"net/http"

	"github.com/ravichandan/foodie-service-sub000/internal/api"
	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

// NewServer wires the route table and the middleware chain.
func NewServer(db *mongodb.DB) http.Handler {
	handlers := api.NewAPI(db)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", api.RootHandler)

	mux.HandleFunc("GET /places/search", handlers.SearchPlaces)
	mux.HandleFunc("POST /places", handlers.AddPlace)
	mux.HandleFunc("GET /places/{id}", handlers.GetPlaceById)

	mux.HandleFunc("GET /popular", handlers.GetPopular)

	mux.HandleFunc("POST /items", handlers.AddItem)
	mux.HandleFunc("GET /items/{id}", handlers.GetItemById)
	mux.HandleFunc("GET /items/{id}/places", handlers.GetItemPlaces)

	mux.HandleFunc("POST /placeitems", handlers.AddPlaceItem)
	mux.HandleFunc("GET /placeitems/{id}/places", handlers.GetPlaceItemPlaces)

	mux.HandleFunc("POST /reviews", handlers.AddReview)
	mux.HandleFunc("GET /reviews/{id}", handlers.GetReviewById)
	mux.HandleFunc("PATCH /reviews/{id}/votes", handlers.VoteReview)

	mux.HandleFunc("GET /customers", handlers.GetCustomers)
	mux.HandleFunc("POST /signup", handlers.SignupHandler)
	mux.HandleFunc("POST /login", handlers.LoginHandler)

	withAuth := AuthMiddleware(config.TokenSecret(), db)(mux)
	return RequestIdMiddleware(withAuth)
}

func ListenAndServe(db *mongodb.DB) error {
	port := config.Port()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(db),
	}

	log.Println("Server is running on port " + port)
	return server.ListenAndServe()
}
