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

// ReviewDb is a customer review of a place, or of one menu entry when
// PlaceItemId is set. Sub-ratings are pointers: a nil field was simply not
// rated and must not contribute to that field's average.
type ReviewDb struct {
	Id           string    `json:"id" bson:"_id"`
	PlaceId      string    `json:"placeId" bson:"placeId"`
	PlaceItemId  *string   `json:"placeItemId" bson:"placeItemId"`
	CustomerId   string    `json:"customerId" bson:"customerId"`
	Taste        *float64  `json:"taste" bson:"taste"`
	Presentation *float64  `json:"presentation" bson:"presentation"`
	Service      *float64  `json:"service" bson:"service"`
	Ambience     *float64  `json:"ambience" bson:"ambience"`
	Description  string    `json:"description" bson:"description"`
	Helpful      int       `json:"helpful" bson:"helpful"`
	NotHelpful   int       `json:"notHelpful" bson:"notHelpful"`
	Media        []string  `json:"media" bson:"media"`
	ParentId     *string   `json:"parentId" bson:"parentId"`
	ChildrenIds  []string  `json:"childrenIds" bson:"childrenIds"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddReview(ctx context.Context, review ReviewDb) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	review.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := coll.InsertOne(ctx, review)
	if err != nil {
		return ReviewDb{}, err
	}

	return review, nil
}

func (db *DB) GetReviewById(ctx context.Context, id string) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	var review ReviewDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ReviewDb{}, ErrRecordNotFound
		}
		return ReviewDb{}, err
	}
	return review, nil
}

// AppendChildReview records a child review id on its parent.
func (db *DB) AppendChildReview(ctx context.Context, parentId, childId string) error {
	coll := db.Collection(ReviewsCollection)

	result, err := coll.UpdateOne(
		ctx,
		bson.M{"_id": parentId},
		bson.M{
			"$push": bson.M{"childrenIds": childId},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetReviewsByScopeSince selects every review for a rating scope created on
// or after the window boundary. A nil placeItemId selects place-level
// reviews only (placeItemId null), matching the aggregate's scope key.
func (db *DB) GetReviewsByScopeSince(ctx context.Context, placeId string, placeItemId *string, since time.Time) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{
		"placeId":   placeId,
		"createdAt": bson.M{"$gte": since},
	}
	if placeItemId != nil {
		filter["placeItemId"] = *placeItemId
	} else {
		filter["placeItemId"] = nil
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []ReviewDb
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// GetReviewsPageByPlaceItem returns one page of non-empty reviews for a
// menu entry, newest first.
func (db *DB) GetReviewsPageByPlaceItem(ctx context.Context, placeItemId string, skip, limit int64) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{
		"placeItemId": placeItemId,
		"description": bson.M{"$gt": ""},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []ReviewDb
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// UpdateReviewVotes bumps the helpful / not-helpful counters.
func (db *DB) UpdateReviewVotes(ctx context.Context, reviewId string, helpful, notHelpful int) (ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	update := bson.M{
		"$inc": bson.M{"helpful": helpful, "notHelpful": notHelpful},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review ReviewDb
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": reviewId}, update, opts).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ReviewDb{}, ErrRecordNotFound
		}
		return ReviewDb{}, err
	}
	return review, nil
}
