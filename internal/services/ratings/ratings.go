package ratings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

// ResolveScope resolves the aggregate scope for a recompute request. A
// given placeItemId wins; otherwise an itemId is resolved through the
// place's menu, and with neither the scope is the place as a whole.
func ResolveScope(db *mongodb.DB, ctx context.Context, placeId string, itemId, placeItemId *string) (Scope, error) {
	if placeItemId != nil {
		return Scope{PlaceId: placeId, PlaceItemId: placeItemId}, nil
	}

	if itemId != nil {
		placeItem, err := db.GetPlaceItemByPlaceAndItem(ctx, placeId, *itemId)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				return Scope{}, fmt.Errorf("%w: place %s item %s", ErrScopeResolution, placeId, *itemId)
			}
			return Scope{}, err
		}
		return Scope{PlaceId: placeId, PlaceItemId: &placeItem.Id}, nil
	}

	return Scope{PlaceId: placeId}, nil
}

// WindowStart returns the boundary of the trailing review window ending at
// now.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, -config.RatingWindowMonths(), 0)
}

/*
Recompute rebuilds the rating aggregate for one scope from the reviews in
the trailing window and upserts it under the (placeId, placeItemId) scope
key.

The recompute is a full overwrite, not an increment: concurrent recomputes
for the same scope race benignly and the last writer's snapshot wins. When
no review falls inside the window the recompute is a no-op and returns
(nil, nil), leaving any existing aggregate untouched.
*/
func Recompute(db *mongodb.DB, ctx context.Context, placeId string, itemId, placeItemId *string) (*Aggregate, error) {
	scope, err := ResolveScope(db, ctx, placeId, itemId, placeItemId)
	if err != nil {
		return nil, err
	}

	since := WindowStart(time.Now())
	reviews, err := db.GetReviewsByScopeSince(ctx, scope.PlaceId, scope.PlaceItemId, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews for rating scope %s: %w", scope.Key(), err)
	}

	snap, ok := ComputeSnapshot(reviews, since, scope.ItemScoped())
	if !ok {
		return nil, nil
	}

	stored, err := db.UpsertRating(ctx, mongodb.RatingDb{
		PlaceId:          scope.PlaceId,
		PlaceItemId:      scope.PlaceItemId,
		Taste:            snap.Taste,
		Presentation:     snap.Presentation,
		Service:          snap.Service,
		Ambience:         snap.Ambience,
		NoOfReviews:      snap.NoOfReviews,
		NoOfReviewPhotos: snap.NoOfReviewPhotos,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rating for scope %s: %w", scope.Key(), err)
	}

	rating := MapDbRatingToApiRating(stored)
	return &rating, nil
}

// GetByScope returns the stored aggregate for a scope, or nil when none
// exists yet.
func GetByScope(db *mongodb.DB, ctx context.Context, placeId string, placeItemId *string) (*Aggregate, error) {
	stored, err := db.GetRatingByScope(ctx, placeId, placeItemId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	rating := MapDbRatingToApiRating(stored)
	return &rating, nil
}
