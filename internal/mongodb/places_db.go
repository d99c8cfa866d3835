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

type PlaceDb struct {
	Id           string          `json:"id" bson:"_id"`
	Name         string          `json:"name" bson:"name"`
	SimpleName   string          `json:"simpleName" bson:"simpleName"`
	Aliases      []string        `json:"aliases" bson:"aliases"`
	Address      AddressDb       `json:"address" bson:"address"`
	OpeningTimes []OpeningTimeDb `json:"openingTimes" bson:"openingTimes"`
	Media        []string        `json:"media" bson:"media"`
	FriendlyTags FriendlyTagsDb  `json:"friendlyTags" bson:"friendlyTags"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Latitude and longitude are kept as strings because they arrive from
// external imports and may be empty or malformed; geo code parses them
// permissively.
type AddressDb struct {
	Line      string `json:"line" bson:"line"`
	Suburb    string `json:"suburb" bson:"suburb"`
	Postcode  string `json:"postcode" bson:"postcode"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state" bson:"state"`
	Country   string `json:"country" bson:"country"`
	Latitude  string `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty" bson:"longitude,omitempty"`
	MapsUri   string `json:"mapsUri,omitempty" bson:"mapsUri,omitempty"`
}

type OpeningTimeDb struct {
	Weekday string `json:"weekday" bson:"weekday"`
	Opens   string `json:"opens" bson:"opens"`
	Closes  string `json:"closes" bson:"closes"`
}

type FriendlyTagsDb struct {
	PetFriendly   bool `json:"petFriendly" bson:"petFriendly"`
	VeganFriendly bool `json:"veganFriendly" bson:"veganFriendly"`
	KidFriendly   bool `json:"kidFriendly" bson:"kidFriendly"`
	DateFriendly  bool `json:"dateFriendly" bson:"dateFriendly"`
}

// PlaceCandidateDb is a place joined to its menu entries, their catalog
// items, and every rating aggregate scoped to the place. The joins run
// store-side; name, geo and rating logic runs on the decoded candidates.
type PlaceCandidateDb struct {
	PlaceDb `bson:",inline"`
	Menu    []PlaceItemDb `bson:"menu"`
	Catalog []ItemDb      `bson:"catalog"`
	Ratings []RatingDb    `bson:"ratings"`
}

// ----- Methods for the database -----

func (db *DB) AddPlace(ctx context.Context, place PlaceDb) (PlaceDb, error) {
	coll := db.Collection(PlacesCollection)

	place.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	place.CreatedAt = now
	place.UpdatedAt = now

	_, err := coll.InsertOne(ctx, place)
	if err != nil {
		return PlaceDb{}, err
	}

	return place, nil
}

func (db *DB) GetPlaceById(ctx context.Context, id string) (PlaceDb, error) {
	coll := db.Collection(PlacesCollection)

	var place PlaceDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PlaceDb{}, ErrRecordNotFound
		}
		return PlaceDb{}, err
	}
	return place, nil
}

func (db *DB) PlaceExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(PlacesCollection)

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetPlaceCandidates runs the address-filtered join pipeline: places
// matching the filter, each joined to its menu entries, the catalog items
// those entries reference, and all rating aggregates for the place.
func (db *DB) GetPlaceCandidates(ctx context.Context, filter bson.M) ([]PlaceCandidateDb, error) {
	coll := db.Collection(PlacesCollection)

	pipeline := NewPipeline().
		Match("address", filter).
		Lookup("menu", PlaceItemsCollection, "_id", "placeId", "menu").
		Lookup("catalog", ItemsCollection, "menu.itemId", "_id", "catalog").
		Lookup("ratings", RatingsCollection, "_id", "placeId", "ratings").
		Build()

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []PlaceCandidateDb
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}
