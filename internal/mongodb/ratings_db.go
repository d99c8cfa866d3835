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

// RatingDb is the rolling aggregate for a scope key (placeId, placeItemId).
// A nil PlaceItemId means the aggregate covers the place as a whole, in
// which case Taste and Presentation stay nil. Only the rating recompute
// path writes these documents.
type RatingDb struct {
	Id               string    `json:"id" bson:"_id"`
	PlaceId          string    `json:"placeId" bson:"placeId"`
	PlaceItemId      *string   `json:"placeItemId" bson:"placeItemId"`
	Taste            *float64  `json:"taste" bson:"taste"`
	Presentation     *float64  `json:"presentation" bson:"presentation"`
	Service          *float64  `json:"service" bson:"service"`
	Ambience         *float64  `json:"ambience" bson:"ambience"`
	NoOfReviews      int       `json:"noOfReviews" bson:"noOfReviews"`
	NoOfReviewPhotos int       `json:"noOfReviewPhotos" bson:"noOfReviewPhotos"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	ModifiedAt       time.Time `json:"modifiedAt" bson:"modifiedAt"`
}

// ----- Methods for the database -----

func (db *DB) GetRatingByScope(ctx context.Context, placeId string, placeItemId *string) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"placeId": placeId}
	if placeItemId != nil {
		filter["placeItemId"] = *placeItemId
	} else {
		filter["placeItemId"] = nil
	}

	var rating RatingDb
	err := coll.FindOne(ctx, filter).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RatingDb{}, ErrRecordNotFound
		}
		return RatingDb{}, err
	}
	return rating, nil
}

// UpsertRating overwrites the aggregate for its scope key, creating it when
// absent. The scope key (placeId, placeItemId) acts as a logical unique key
// so concurrent recomputes can never produce duplicate aggregates; the last
// writer's snapshot wins.
func (db *DB) UpsertRating(ctx context.Context, rating RatingDb) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"placeId": rating.PlaceId}
	if rating.PlaceItemId != nil {
		filter["placeItemId"] = *rating.PlaceItemId
	} else {
		filter["placeItemId"] = nil
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"taste":            rating.Taste,
			"presentation":     rating.Presentation,
			"service":          rating.Service,
			"ambience":         rating.Ambience,
			"noOfReviews":      rating.NoOfReviews,
			"noOfReviewPhotos": rating.NoOfReviewPhotos,
			"modifiedAt":       now,
		},
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"placeId":     rating.PlaceId,
			"placeItemId": rating.PlaceItemId,
			"createdAt":   now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored RatingDb
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return RatingDb{}, err
	}
	return stored, nil
}
