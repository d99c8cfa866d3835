package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/server"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	if err := server.ListenAndServe(db); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
