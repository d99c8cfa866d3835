package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates the indexes every collection relies on.
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateCustomerIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}
	if err := CreateRatingIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create rating indexes: %w", err)
	}
	if err := CreatePlaceIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create place indexes: %w", err)
	}
	if err := CreatePlaceItemIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create place item indexes: %w", err)
	}
	if err := CreateReviewIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}

// CreateCustomerIndexes creates indexes for the customers collection
func CreateCustomerIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(CustomersCollection)

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndexName := "email_unique"
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(emailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, emailIndexName, reset); err != nil {
		return err
	}

	// Create unique index on username (case-insensitive)
	usernameIndexName := "username_unique"
	usernameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usernameIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"username": bson.M{"$type": "string"}},
					{"username": bson.M{"$gt": ""}},
				},
			}),
	}
	return createIndexIfNotExists(ctx, coll, usernameIndex, usernameIndexName, reset)
}

// CreateRatingIndexes enforces the aggregate scope key: at most one
// aggregate per (placeId, placeItemId) pair, including the place-level
// pair where placeItemId is null.
func CreateRatingIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(RatingsCollection)

	scopeIndexName := "placeId_and_placeItemId_unique"
	scopeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "placeId", Value: 1}, {Key: "placeItemId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(scopeIndexName),
	}
	return createIndexIfNotExists(ctx, coll, scopeIndex, scopeIndexName, reset)
}

// CreatePlaceIndexes creates the search-support indexes on address fields
// and the simplified name.
func CreatePlaceIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(PlacesCollection)

	addressIndexName := "address_city_postcode"
	addressIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "address.city", Value: 1}, {Key: "address.postcode", Value: 1}},
		Options: options.Index().
			SetName(addressIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, addressIndex, addressIndexName, reset); err != nil {
		return err
	}

	nameIndexName := "simpleName_1"
	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "simpleName", Value: 1}},
		Options: options.Index().
			SetName(nameIndexName),
	}
	return createIndexIfNotExists(ctx, coll, nameIndex, nameIndexName, reset)
}

// CreatePlaceItemIndexes creates a unique (placeId, itemId) index so a
// place lists a catalog item at most once.
func CreatePlaceItemIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(PlaceItemsCollection)

	pairIndexName := "placeId_and_itemId_unique"
	pairIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "placeId", Value: 1}, {Key: "itemId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(pairIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, pairIndex, pairIndexName, reset); err != nil {
		return err
	}

	dietIndexName := "diet_1"
	dietIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "diet", Value: 1}},
		Options: options.Index().
			SetName(dietIndexName),
	}
	return createIndexIfNotExists(ctx, coll, dietIndex, dietIndexName, reset)
}

// CreateReviewIndexes supports the windowed scope selection used by the
// rating recompute.
func CreateReviewIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(ReviewsCollection)

	scopeIndexName := "placeId_placeItemId_createdAt"
	scopeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "placeId", Value: 1},
			{Key: "placeItemId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().
			SetName(scopeIndexName),
	}
	return createIndexIfNotExists(ctx, coll, scopeIndex, scopeIndexName, reset)
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}
		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error while listing indexes: %w", err)
	}

	if indexExists {
		if !reset {
			return nil
		}
		if _, err := coll.Indexes().DropOne(ctx, indexName); err != nil {
			return fmt.Errorf("failed to drop index '%s': %w", indexName, err)
		}
	}

	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	return nil
}
