package mongodb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testDB *DB

const testDBName = "testDb"

func TestMain(m *testing.M) {
	ctx := context.Background()

	os.Setenv("MONGODB_DB", testDBName)
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get mongo endpoint: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://"+endpoint))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	testDB = NewDB(client)

	code := m.Run()

	_ = client.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testDB.client.Database(testDBName)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	require.NoError(t, err)

	for _, coll := range collections {
		require.NoError(t, db.Collection(coll).Drop(ctx))
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestUpsertRatingCreatesThenOverwrites(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	first, err := testDB.UpsertRating(ctx, RatingDb{
		PlaceId:     "place-1",
		PlaceItemId: strPtr("placeitem-1"),
		Taste:       floatPtr(4.2),
		NoOfReviews: 3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.Id)
	require.Equal(t, 3, first.NoOfReviews)

	second, err := testDB.UpsertRating(ctx, RatingDb{
		PlaceId:     "place-1",
		PlaceItemId: strPtr("placeitem-1"),
		Taste:       floatPtr(4.5),
		NoOfReviews: 4,
	})
	require.NoError(t, err)

	// Same document: overwritten, never duplicated.
	require.Equal(t, first.Id, second.Id)
	require.Equal(t, first.CreatedAt.Truncate(time.Millisecond), second.CreatedAt.Truncate(time.Millisecond))
	require.Equal(t, 4, second.NoOfReviews)
	require.InDelta(t, 4.5, *second.Taste, 1e-9)

	count, err := testDB.Collection(RatingsCollection).CountDocuments(ctx, bson.M{"placeId": "place-1"})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUpsertRatingKeepsScopesSeparate(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	itemScoped, err := testDB.UpsertRating(ctx, RatingDb{
		PlaceId:     "place-1",
		PlaceItemId: strPtr("placeitem-1"),
		Service:     floatPtr(4),
		NoOfReviews: 1,
	})
	require.NoError(t, err)

	placeScoped, err := testDB.UpsertRating(ctx, RatingDb{
		PlaceId:     "place-1",
		PlaceItemId: nil,
		Service:     floatPtr(3),
		NoOfReviews: 2,
	})
	require.NoError(t, err)

	require.NotEqual(t, itemScoped.Id, placeScoped.Id)

	stored, err := testDB.GetRatingByScope(ctx, "place-1", nil)
	require.NoError(t, err)
	require.Equal(t, placeScoped.Id, stored.Id)
	require.Nil(t, stored.PlaceItemId)
}

func TestGetReviewsByScopeSinceFiltersWindowAndScope(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	now := time.Now()
	coll := testDB.Collection(ReviewsCollection)

	docs := []interface{}{
		ReviewDb{Id: "r-recent", PlaceId: "place-1", PlaceItemId: strPtr("pi-1"), CustomerId: "c-1", CreatedAt: now.AddDate(0, 0, -7)},
		ReviewDb{Id: "r-stale", PlaceId: "place-1", PlaceItemId: strPtr("pi-1"), CustomerId: "c-1", CreatedAt: now.AddDate(0, -3, 0)},
		ReviewDb{Id: "r-place-level", PlaceId: "place-1", PlaceItemId: nil, CustomerId: "c-1", CreatedAt: now.AddDate(0, 0, -7)},
		ReviewDb{Id: "r-other-item", PlaceId: "place-1", PlaceItemId: strPtr("pi-2"), CustomerId: "c-1", CreatedAt: now.AddDate(0, 0, -7)},
	}
	_, err := coll.InsertMany(ctx, docs)
	require.NoError(t, err)

	since := now.AddDate(0, -2, 0)

	itemReviews, err := testDB.GetReviewsByScopeSince(ctx, "place-1", strPtr("pi-1"), since)
	require.NoError(t, err)
	require.Len(t, itemReviews, 1)
	require.Equal(t, "r-recent", itemReviews[0].Id)

	placeReviews, err := testDB.GetReviewsByScopeSince(ctx, "place-1", nil, since)
	require.NoError(t, err)
	require.Len(t, placeReviews, 1)
	require.Equal(t, "r-place-level", placeReviews[0].Id)
}

func TestGetPlaceItemCandidatesFiltersByJoinedPlace(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	sydney, err := testDB.AddPlace(ctx, PlaceDb{
		Name:    "Harbour Deli",
		Address: AddressDb{City: "sydney"},
	})
	require.NoError(t, err)

	melbourne, err := testDB.AddPlace(ctx, PlaceDb{
		Name:    "Laneway Deli",
		Address: AddressDb{City: "melbourne"},
	})
	require.NoError(t, err)

	item, err := testDB.AddItem(ctx, ItemDb{Name: "Reuben"})
	require.NoError(t, err)

	_, err = testDB.AddPlaceItem(ctx, PlaceItemDb{PlaceId: sydney.Id, ItemId: item.Id, Name: "Reuben"})
	require.NoError(t, err)
	_, err = testDB.AddPlaceItem(ctx, PlaceItemDb{PlaceId: melbourne.Id, ItemId: item.Id, Name: "Reuben"})
	require.NoError(t, err)

	candidates, err := testDB.GetPlaceItemCandidates(ctx, bson.M{}, bson.M{"place.address.city": "sydney"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, sydney.Id, candidates[0].Place.Id)
}

func TestGetPlaceCandidatesJoins(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	place, err := testDB.AddPlace(ctx, PlaceDb{
		Name:       "Cafe Sydney",
		SimpleName: "cafe sydney",
		Address:    AddressDb{City: "sydney", Postcode: "2000"},
	})
	require.NoError(t, err)

	item, err := testDB.AddItem(ctx, ItemDb{Name: "Flat White"})
	require.NoError(t, err)

	placeItem, err := testDB.AddPlaceItem(ctx, PlaceItemDb{
		PlaceId: place.Id,
		ItemId:  item.Id,
		Name:    "Flat White",
	})
	require.NoError(t, err)

	_, err = testDB.UpsertRating(ctx, RatingDb{
		PlaceId:     place.Id,
		PlaceItemId: &placeItem.Id,
		Taste:       floatPtr(4.4),
		NoOfReviews: 5,
	})
	require.NoError(t, err)

	candidates, err := testDB.GetPlaceCandidates(ctx, bson.M{"address.city": "sydney"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	got := candidates[0]
	require.Equal(t, place.Id, got.Id)
	require.Len(t, got.Menu, 1)
	require.Len(t, got.Catalog, 1)
	require.Len(t, got.Ratings, 1)
	require.Equal(t, item.Id, got.Catalog[0].Id)
}
