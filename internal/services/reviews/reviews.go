package reviews

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

/*
Submit creates a parent review for a place plus any per-item child
reviews in one customer action.

Each child resolves its menu entry at creation time, so a child always
carries a non-null placeItemId and a resolution failure fails that one
child without touching its siblings. After the writes, every distinct
rating scope the submission touched is recomputed asynchronously;
aggregates trail writes and a recompute failure never fails the
submission.
*/
func Submit(db *mongodb.DB, ctx context.Context, req NewReviewRequest) (SubmissionResult, error) {
	if !validRatings(req.Taste, req.Presentation, req.Service, req.Ambience) {
		return SubmissionResult{}, ErrInvalidRatingValue
	}
	if _, err := db.GetPlaceById(ctx, req.PlaceId); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return SubmissionResult{}, ErrPlaceNotFound
		}
		return SubmissionResult{}, err
	}
	if _, err := db.GetCustomerById(ctx, req.CustomerId); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return SubmissionResult{}, ErrCustomerNotFound
		}
		return SubmissionResult{}, err
	}

	parent, err := db.AddReview(ctx, mongodb.ReviewDb{
		PlaceId:      req.PlaceId,
		CustomerId:   req.CustomerId,
		Taste:        req.Taste,
		Presentation: req.Presentation,
		Service:      req.Service,
		Ambience:     req.Ambience,
		Description:  req.Description,
		Media:        req.Media,
	})
	if err != nil {
		return SubmissionResult{}, err
	}

	result := SubmissionResult{Review: MapDbReviewToApiReview(parent)}

	scopes := map[string]ratings.Scope{}
	scopes[ratings.Scope{PlaceId: req.PlaceId}.Key()] = ratings.Scope{PlaceId: req.PlaceId}

	for _, childReq := range req.Children {
		child, scope, err := submitChild(db, ctx, parent, req.CustomerId, childReq)
		if err != nil {
			result.Failures = append(result.Failures, ChildFailure{
				ItemId:      childReq.ItemId,
				PlaceItemId: childReq.PlaceItemId,
				Reason:      err.Error(),
			})
			continue
		}
		result.Review.Children = append(result.Review.Children, MapDbReviewToApiReview(child))
		scopes[scope.Key()] = scope
	}

	recomputeScopesAsync(db, logx.FromContext(ctx), scopes)

	return result, nil
}

func submitChild(db *mongodb.DB, ctx context.Context, parent mongodb.ReviewDb, customerId string, req ChildReviewRequest) (mongodb.ReviewDb, ratings.Scope, error) {
	if !validRatings(req.Taste, req.Presentation, req.Service, req.Ambience) {
		return mongodb.ReviewDb{}, ratings.Scope{}, ErrInvalidRatingValue
	}
	if req.PlaceItemId == "" && req.ItemId == "" {
		return mongodb.ReviewDb{}, ratings.Scope{}, ErrChildTargetMissing
	}

	var placeItemId, itemId *string
	if req.PlaceItemId != "" {
		placeItemId = &req.PlaceItemId
	} else {
		itemId = &req.ItemId
	}

	scope, err := ratings.ResolveScope(db, ctx, parent.PlaceId, itemId, placeItemId)
	if err != nil {
		return mongodb.ReviewDb{}, ratings.Scope{}, err
	}

	child, err := db.AddReview(ctx, mongodb.ReviewDb{
		PlaceId:      parent.PlaceId,
		PlaceItemId:  scope.PlaceItemId,
		CustomerId:   customerId,
		Taste:        req.Taste,
		Presentation: req.Presentation,
		Service:      req.Service,
		Ambience:     req.Ambience,
		Description:  req.Description,
		Media:        req.Media,
		ParentId:     &parent.Id,
	})
	if err != nil {
		return mongodb.ReviewDb{}, ratings.Scope{}, err
	}

	if err := db.AppendChildReview(ctx, parent.Id, child.Id); err != nil {
		logx.FromContext(ctx).Printf("failed to link child review %s to parent %s: %v", child.Id, parent.Id, err)
	}

	return child, scope, nil
}

// recomputeScopesAsync refreshes the rating aggregates the submission
// touched. It runs detached from the request with its own deadline.
func recomputeScopesAsync(db *mongodb.DB, logger *log.Logger, scopes map[string]ratings.Scope) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for key, scope := range scopes {
			if _, err := ratings.Recompute(db, ctx, scope.PlaceId, nil, scope.PlaceItemId); err != nil {
				logger.Printf("rating recompute failed for scope %s: %v", key, err)
			}
		}
	}()
}

// GetReviewWithThread returns a review with its child reviews inlined.
// Children that fail to load are skipped so a broken link does not hide
// the parent.
func GetReviewWithThread(db *mongodb.DB, ctx context.Context, id string) (Review, error) {
	stored, err := db.GetReviewById(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}

	review := MapDbReviewToApiReview(stored)
	for _, childId := range stored.ChildrenIds {
		child, err := db.GetReviewById(ctx, childId)
		if err != nil {
			logx.FromContext(ctx).Printf("failed to load child review %s of %s: %v", childId, id, err)
			continue
		}
		review.Children = append(review.Children, MapDbReviewToApiReview(child))
	}

	return review, nil
}

// Vote bumps a review's helpful or not-helpful counter.
func Vote(db *mongodb.DB, ctx context.Context, id string, req VoteRequest) (Review, error) {
	helpful, notHelpful := 0, 0
	if req.Helpful {
		helpful = 1
	}
	if req.NotHelpful {
		notHelpful = 1
	}

	stored, err := db.UpdateReviewVotes(ctx, id, helpful, notHelpful)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}
	return MapDbReviewToApiReview(stored), nil
}
