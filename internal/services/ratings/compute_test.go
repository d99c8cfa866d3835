package ratings

import (
	"testing"
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func review(createdAt time.Time, taste, presentation, service, ambience *float64, photos int) mongodb.ReviewDb {
	return mongodb.ReviewDb{
		Taste:        taste,
		Presentation: presentation,
		Service:      service,
		Ambience:     ambience,
		Media:        make([]string, photos),
		CreatedAt:    createdAt,
	}
}

func TestComputeSnapshotAverages(t *testing.T) {
	now := time.Now()
	since := now.AddDate(0, -2, 0)

	reviews := []mongodb.ReviewDb{
		review(now.AddDate(0, 0, -1), floatPtr(4), floatPtr(3), floatPtr(5), nil, 2),
		review(now.AddDate(0, 0, -10), floatPtr(5), nil, floatPtr(3), floatPtr(4), 1),
		// Rated nothing at all; still counts toward NoOfReviews.
		review(now.AddDate(0, 0, -20), nil, nil, nil, nil, 0),
	}

	snap, ok := ComputeSnapshot(reviews, since, true)
	require.True(t, ok)
	require.Equal(t, 3, snap.NoOfReviews)
	require.Equal(t, 3, snap.NoOfReviewPhotos)
	require.InDelta(t, 4.5, *snap.Taste, 1e-9)
	require.InDelta(t, 3.0, *snap.Presentation, 1e-9)
	require.InDelta(t, 4.0, *snap.Service, 1e-9)
	require.InDelta(t, 4.0, *snap.Ambience, 1e-9)
}

func TestComputeSnapshotWindowExclusion(t *testing.T) {
	now := time.Now()
	since := now.AddDate(0, -2, 0)

	inWindow := review(now.AddDate(0, 0, -7), floatPtr(4), nil, nil, nil, 0)
	stale := review(now.AddDate(0, -3, 0), floatPtr(1), nil, nil, nil, 5)

	snap, ok := ComputeSnapshot([]mongodb.ReviewDb{inWindow, stale}, since, true)
	require.True(t, ok)
	require.Equal(t, 1, snap.NoOfReviews)
	require.Equal(t, 0, snap.NoOfReviewPhotos)
	require.InDelta(t, 4.0, *snap.Taste, 1e-9)

	// Moving the boundary past the stale review changes the average.
	widerSince := now.AddDate(0, -4, 0)
	snap, ok = ComputeSnapshot([]mongodb.ReviewDb{inWindow, stale}, widerSince, true)
	require.True(t, ok)
	require.Equal(t, 2, snap.NoOfReviews)
	require.InDelta(t, 2.5, *snap.Taste, 1e-9)
}

func TestComputeSnapshotIdempotent(t *testing.T) {
	now := time.Now()
	since := now.AddDate(0, -2, 0)
	reviews := []mongodb.ReviewDb{
		review(now.AddDate(0, 0, -3), floatPtr(4), floatPtr(4), floatPtr(2), floatPtr(5), 1),
		review(now.AddDate(0, 0, -4), floatPtr(3), nil, floatPtr(4), nil, 0),
	}

	first, ok := ComputeSnapshot(reviews, since, true)
	require.True(t, ok)
	second, ok := ComputeSnapshot(reviews, since, true)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestComputeSnapshotPlaceScopeNeverHasFoodFields(t *testing.T) {
	now := time.Now()
	since := now.AddDate(0, -2, 0)

	// Even when reviews carry taste/presentation, a place-level snapshot
	// keeps them nil.
	reviews := []mongodb.ReviewDb{
		review(now.AddDate(0, 0, -1), floatPtr(5), floatPtr(5), floatPtr(4), floatPtr(3), 0),
	}

	snap, ok := ComputeSnapshot(reviews, since, false)
	require.True(t, ok)
	require.Nil(t, snap.Taste)
	require.Nil(t, snap.Presentation)
	require.InDelta(t, 4.0, *snap.Service, 1e-9)
	require.InDelta(t, 3.0, *snap.Ambience, 1e-9)
}

func TestComputeSnapshotNoContributingReviews(t *testing.T) {
	now := time.Now()
	since := now.AddDate(0, -2, 0)

	_, ok := ComputeSnapshot(nil, since, true)
	require.False(t, ok)

	onlyStale := []mongodb.ReviewDb{review(now.AddDate(0, -5, 0), floatPtr(5), nil, nil, nil, 0)}
	_, ok = ComputeSnapshot(onlyStale, since, true)
	require.False(t, ok)
}

func TestScopeKey(t *testing.T) {
	placeItem := "pi-1"
	require.Equal(t, "p-1", Scope{PlaceId: "p-1"}.Key())
	require.Equal(t, "p-1/pi-1", Scope{PlaceId: "p-1", PlaceItemId: &placeItem}.Key())
	require.True(t, Scope{PlaceId: "p-1", PlaceItemId: &placeItem}.ItemScoped())
	require.False(t, Scope{PlaceId: "p-1"}.ItemScoped())
}
