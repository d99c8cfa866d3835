package reviews

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

var testDB *mongodb.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	os.Setenv("MONGODB_DB", "testDb")
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

	testDB = mongodb.NewDB(client)

	code := m.Run()

	_ = client.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func seedSubmission(t *testing.T, ctx context.Context) (placeId, customerId, placeItemId string) {
	t.Helper()

	place, err := testDB.AddPlace(ctx, mongodb.PlaceDb{
		Name:    "Harbour Deli",
		Address: mongodb.AddressDb{City: "sydney"},
	})
	require.NoError(t, err)

	customer, err := testDB.AddCustomer(ctx, mongodb.CustomerDb{
		Name:     "Jo Eats",
		Username: "jo-eats",
		Email:    "jo.eats@example.com",
		IsActive: true,
	})
	require.NoError(t, err)

	item, err := testDB.AddItem(ctx, mongodb.ItemDb{Name: "Reuben"})
	require.NoError(t, err)

	placeItem, err := testDB.AddPlaceItem(ctx, mongodb.PlaceItemDb{
		PlaceId: place.Id,
		ItemId:  item.Id,
		Name:    "Reuben",
	})
	require.NoError(t, err)

	return place.Id, customer.Id, placeItem.Id
}

func TestSubmitIsolatesFailedChild(t *testing.T) {
	ctx := context.Background()
	placeId, customerId, placeItemId := seedSubmission(t, ctx)

	// One child targets a real menu entry, the other names a catalog item
	// the place does not offer, so its scope resolution must fail. The
	// failure lands in Failures and never touches the sibling.
	result, err := Submit(testDB, ctx, NewReviewRequest{
		PlaceId:     placeId,
		CustomerId:  customerId,
		Service:     ptr(4),
		Description: "great spot",
		Children: []ChildReviewRequest{
			{PlaceItemId: placeItemId, Taste: ptr(5), Description: "best reuben in town"},
			{ItemId: "item-not-on-menu", Taste: ptr(2)},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Review.Children, 1)
	require.Len(t, result.Failures, 1)
	require.Equal(t, "item-not-on-menu", result.Failures[0].ItemId)

	// The surviving child persisted with a resolved menu entry and is
	// linked back to its parent.
	child := result.Review.Children[0]
	require.NotNil(t, child.PlaceItemId)
	require.Equal(t, placeItemId, *child.PlaceItemId)

	parent, err := testDB.GetReviewById(ctx, result.Review.Id)
	require.NoError(t, err)
	require.Equal(t, []string{child.Id}, parent.ChildrenIds)

	stored, err := testDB.GetReviewById(ctx, child.Id)
	require.NoError(t, err)
	require.NotNil(t, stored.ParentId)
	require.Equal(t, result.Review.Id, *stored.ParentId)
}

func TestSubmitRejectsChildWithoutTarget(t *testing.T) {
	ctx := context.Background()
	placeId, customerId, _ := seedSubmission(t, ctx)

	result, err := Submit(testDB, ctx, NewReviewRequest{
		PlaceId:    placeId,
		CustomerId: customerId,
		Ambience:   ptr(3),
		Children: []ChildReviewRequest{
			{Taste: ptr(4)},
		},
	})
	require.NoError(t, err)

	require.Empty(t, result.Review.Children)
	require.Len(t, result.Failures, 1)
	require.Equal(t, ErrChildTargetMissing.Error(), result.Failures[0].Reason)
}
