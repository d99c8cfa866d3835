package reviews

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

func dbReviewFixture() mongodb.ReviewDb {
	return mongodb.ReviewDb{
		Id:          "r1",
		PlaceId:     "p1",
		CustomerId:  "c1",
		Service:     ptr(4),
		Description: "friendly staff",
	}
}

func ptr(v float64) *float64 { return &v }

func TestValidRatings(t *testing.T) {
	require.True(t, validRatings(nil, nil, nil, nil))
	require.True(t, validRatings(ptr(1), ptr(5), ptr(3.5), nil))
	require.False(t, validRatings(ptr(0.5)))
	require.False(t, validRatings(ptr(5.1)))
	require.False(t, validRatings(ptr(3), ptr(-1)))
}

func TestMapDbReviewKeepsNullableFields(t *testing.T) {
	review := MapDbReviewToApiReview(dbReviewFixture())

	require.Nil(t, review.PlaceItemId)
	require.Nil(t, review.Taste)
	require.NotNil(t, review.Service)
	require.EqualValues(t, 4, *review.Service)
	require.Nil(t, review.ParentId)
}
