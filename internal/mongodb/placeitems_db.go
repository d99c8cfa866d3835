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

// PlaceItemDb ties a catalog item to a place with place-specific details.
type PlaceItemDb struct {
	Id          string     `json:"id" bson:"_id"`
	PlaceId     string     `json:"placeId" bson:"placeId"`
	ItemId      string     `json:"itemId" bson:"itemId"`
	Name        string     `json:"name" bson:"name"`
	SimpleName  string     `json:"simpleName" bson:"simpleName"`
	Price       float64    `json:"price" bson:"price"`
	Ingredients []string   `json:"ingredients" bson:"ingredients"`
	Allergens   []string   `json:"allergens" bson:"allergens"`
	Calories    CaloriesDb `json:"calories" bson:"calories"`
	Diet        int        `json:"diet" bson:"diet"`
	Popularity  string     `json:"popularity,omitempty" bson:"popularity,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type CaloriesDb struct {
	Count int    `json:"count" bson:"count"`
	Unit  string `json:"unit" bson:"unit"`
}

// PlaceItemCandidateDb is a menu entry joined to its place, its catalog
// item, and its rating aggregates, as produced by the popularity pipeline.
type PlaceItemCandidateDb struct {
	PlaceItemDb `bson:",inline"`
	Place       PlaceDb    `bson:"place"`
	Item        ItemDb     `bson:"item"`
	Ratings     []RatingDb `bson:"itemRatings"`
}

// ----- Methods for the database -----

func (db *DB) AddPlaceItem(ctx context.Context, placeItem PlaceItemDb) (PlaceItemDb, error) {
	coll := db.Collection(PlaceItemsCollection)

	placeItem.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	placeItem.CreatedAt = now
	placeItem.UpdatedAt = now

	_, err := coll.InsertOne(ctx, placeItem)
	if err != nil {
		return PlaceItemDb{}, err
	}

	return placeItem, nil
}

func (db *DB) GetPlaceItemById(ctx context.Context, id string) (PlaceItemDb, error) {
	coll := db.Collection(PlaceItemsCollection)

	var placeItem PlaceItemDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&placeItem)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PlaceItemDb{}, ErrRecordNotFound
		}
		return PlaceItemDb{}, err
	}
	return placeItem, nil
}

// GetPlaceItemByPlaceAndItem resolves the menu entry for a (place, item)
// pair; used to resolve rating scopes and child-review targets.
func (db *DB) GetPlaceItemByPlaceAndItem(ctx context.Context, placeId, itemId string) (PlaceItemDb, error) {
	coll := db.Collection(PlaceItemsCollection)

	var placeItem PlaceItemDb
	err := coll.FindOne(ctx, bson.M{"placeId": placeId, "itemId": itemId}).Decode(&placeItem)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PlaceItemDb{}, ErrRecordNotFound
		}
		return PlaceItemDb{}, err
	}
	return placeItem, nil
}

func (db *DB) GetPlaceItemsByItemId(ctx context.Context, itemId string) ([]PlaceItemDb, error) {
	coll := db.Collection(PlaceItemsCollection)

	cursor, err := coll.Find(ctx, bson.M{"itemId": itemId})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var placeItems []PlaceItemDb
	if err := cursor.All(ctx, &placeItems); err != nil {
		return nil, err
	}

	return placeItems, nil
}

// GetPlaceItemCandidates runs the popularity join pipeline: menu entries
// matching the filter (typically a diet-code restriction), each joined to
// its place, its catalog item and its item-scoped rating aggregates. The
// placeFilter narrows on the joined place's fields (keys prefixed with
// "place.") right after the place join, so out-of-town menus never reach
// the later stages.
func (db *DB) GetPlaceItemCandidates(ctx context.Context, filter, placeFilter bson.M) ([]PlaceItemCandidateDb, error) {
	coll := db.Collection(PlaceItemsCollection)

	builder := NewPipeline()
	if len(filter) > 0 {
		builder.Match("diet", filter)
	}
	builder.
		Lookup("place", PlacesCollection, "placeId", "_id", "place").
		Unwind("place-one", "$place")
	if len(placeFilter) > 0 {
		builder.Match("place-address", placeFilter)
	}
	pipeline := builder.
		Lookup("item", ItemsCollection, "itemId", "_id", "item").
		Unwind("item-one", "$item").
		Lookup("ratings", RatingsCollection, "_id", "placeItemId", "itemRatings").
		Build()

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []PlaceItemCandidateDb
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}
