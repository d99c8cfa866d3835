package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

// ItemDb is a shared catalog entry; many place items may reference one.
type ItemDb struct {
	Id        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Aliases   []string  `json:"aliases" bson:"aliases"`
	Cuisines  []string  `json:"cuisines" bson:"cuisines"`
	Course    string    `json:"course" bson:"course"`
	Dietary   DietaryDb `json:"dietary" bson:"dietary"`
	Media     string    `json:"media,omitempty" bson:"media,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type DietaryDb struct {
	Vegan       bool `json:"vegan" bson:"vegan"`
	Vegetarian  bool `json:"vegetarian" bson:"vegetarian"`
	Eggitarian  bool `json:"eggitarian" bson:"eggitarian"`
	Pescatarian bool `json:"pescatarian" bson:"pescatarian"`
	Halal       bool `json:"halal" bson:"halal"`
}

// ----- Methods for the database -----

func (db *DB) AddItem(ctx context.Context, item ItemDb) (ItemDb, error) {
	coll := db.Collection(ItemsCollection)

	item.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := coll.InsertOne(ctx, item)
	if err != nil {
		return ItemDb{}, err
	}

	return item, nil
}

func (db *DB) GetItemById(ctx context.Context, id string) (ItemDb, error) {
	coll := db.Collection(ItemsCollection)

	var item ItemDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ItemDb{}, ErrRecordNotFound
		}
		return ItemDb{}, err
	}
	return item, nil
}

func (db *DB) ItemExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(ItemsCollection)

	err := coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
