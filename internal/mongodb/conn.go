package mongodb

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	PlacesCollection     = "places"
	ItemsCollection      = "items"
	PlaceItemsCollection = "placeitems"
	ReviewsCollection    = "reviews"
	RatingsCollection    = "ratings"
	CustomersCollection  = "customers"
)

// DB wraps the mongo client plus the database name so data-access methods
// can hang off one receiver.
type DB struct {
	client       *mongo.Client
	databaseName string
}

// Connect connects to MongoDB using MONGODB_URI and verifies the connection
// with a ping.
func Connect(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required (e.g. mongodb://localhost:27017)")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	return client, nil
}

func NewDB(client *mongo.Client) *DB {
	return &DB{
		client:       client,
		databaseName: getDatabaseName(),
	}
}

func getDatabaseName() string {
	name := os.Getenv("MONGODB_DB")
	if name == "" {
		name = "foodie"
	}
	return name
}

func (db *DB) GetDatabaseName() string {
	return db.databaseName
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.client.Database(db.databaseName).Collection(name)
}
