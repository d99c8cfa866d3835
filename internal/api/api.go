package api

import (
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

type API struct {
	Db *mongodb.DB
}

func NewAPI(db *mongodb.DB) *API {
	return &API{Db: db}
}
