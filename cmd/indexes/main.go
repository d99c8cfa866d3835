package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

func main() {
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "Delete the indexes and recreate them")
	flag.Parse()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	database := dbClient.Database(db.GetDatabaseName())

	if err := mongodb.CreateAllIndexes(ctx, database, *reset); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	fmt.Println("✅ indexes created successfully!")
}
