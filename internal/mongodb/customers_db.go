package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type CustomerDb struct {
	Id           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Status       string    `json:"status" bson:"status"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CustomerSummaryDb is the minimal projection exposed on review read
// paths: never contact fields.
type CustomerSummaryDb struct {
	Id     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Status string `json:"status" bson:"status"`
}

// ----- Methods for the database -----

func (db *DB) AddCustomer(ctx context.Context, customer CustomerDb) (CustomerDb, error) {
	coll := db.Collection(CustomersCollection)

	customer.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	_, err := coll.InsertOne(ctx, customer)
	if err != nil {
		return CustomerDb{}, err
	}

	return customer, nil
}

func (db *DB) GetCustomerById(ctx context.Context, id string) (CustomerDb, error) {
	coll := db.Collection(CustomersCollection)

	var customer CustomerDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CustomerDb{}, ErrRecordNotFound
		}
		return CustomerDb{}, err
	}
	return customer, nil
}

func (db *DB) GetCustomerByUsername(ctx context.Context, username string) (CustomerDb, error) {
	coll := db.Collection(CustomersCollection)

	var customer CustomerDb
	err := coll.FindOne(ctx, bson.M{"username": username}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CustomerDb{}, ErrRecordNotFound
		}
		return CustomerDb{}, err
	}
	return customer, nil
}

func (db *DB) GetAllCustomers(ctx context.Context) ([]CustomerDb, error) {
	coll := db.Collection(CustomersCollection)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []CustomerDb
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerSummaries fetches the minimal projection for a set of ids.
func (db *DB) GetCustomerSummaries(ctx context.Context, ids []string) (map[string]CustomerSummaryDb, error) {
	summaries := make(map[string]CustomerSummaryDb)
	if len(ids) == 0 {
		return summaries, nil
	}

	coll := db.Collection(CustomersCollection)

	filter := bson.M{"_id": bson.M{"$in": ids}}
	opts := options.Find().SetProjection(bson.M{
		"_id":    1,
		"name":   1,
		"status": 1,
	})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []CustomerSummaryDb
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	for _, summary := range results {
		summaries[summary.Id] = summary
	}

	return summaries, nil
}
