package items

import (
	"context"
	"errors"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/diet"
	"github.com/ravichandan/foodie-service-sub000/internal/logx"
	"github.com/ravichandan/foodie-service-sub000/internal/match"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

func AddItem(db *mongodb.DB, ctx context.Context, req NewItemRequest) (Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Item{}, ErrItemNameRequired
	}

	stored, err := db.AddItem(ctx, mongodb.ItemDb{
		Name:     req.Name,
		Aliases:  req.Aliases,
		Cuisines: req.Cuisines,
		Course:   req.Course,
		Dietary:  req.Dietary,
		Media:    req.Media,
	})
	if err != nil {
		return Item{}, err
	}

	return MapDbItemToApiItem(stored), nil
}

func GetItemById(db *mongodb.DB, ctx context.Context, id string) (Item, error) {
	stored, err := db.GetItemById(ctx, id)
	if err != nil {
		return Item{}, err
	}
	return MapDbItemToApiItem(stored), nil
}

// AddPlaceItem registers a catalog item on a place's menu. The diet code is
// classified from the catalog item's course category and the names, via the
// ordered rule table.
func AddPlaceItem(db *mongodb.DB, ctx context.Context, req NewPlaceItemRequest) (mongodb.PlaceItemDb, error) {
	item, err := db.GetItemById(ctx, req.ItemId)
	if err != nil {
		return mongodb.PlaceItemDb{}, err
	}
	if _, err := db.GetPlaceById(ctx, req.PlaceId); err != nil {
		return mongodb.PlaceItemDb{}, err
	}

	name := req.Name
	if name == "" {
		name = item.Name
	}

	return db.AddPlaceItem(ctx, mongodb.PlaceItemDb{
		PlaceId:     req.PlaceId,
		ItemId:      req.ItemId,
		Name:        name,
		SimpleName:  strings.ToLower(match.Normalize(name)),
		Price:       req.Price,
		Ingredients: req.Ingredients,
		Allergens:   req.Allergens,
		Calories:    req.Calories,
		Diet:        diet.Classify(item.Course, name, item.Name),
		Popularity:  req.Popularity,
	})
}

/*
Locate returns every place offering an item. The reference is either a
catalog item id (all menu entries referencing it) or one exact place-item
id. Each offering carries the resolved catalog item, the menu entry's
rating aggregate, and one page of non-empty reviews with reviewers reduced
to the minimal name/status projection.

A reference that resolves to nothing raises NotFound: this is an
identity-keyed lookup, unlike a search where an empty result set is fine.
*/
func Locate(db *mongodb.DB, ctx context.Context, ref LocateRef, page, size int) ([]Offering, error) {
	placeItems, err := resolvePlaceItems(db, ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(placeItems) == 0 {
		return nil, mongodb.ErrRecordNotFound
	}

	skip, limit := reviewPage(page, size)
	logger := logx.FromContext(ctx)

	offerings := make([]Offering, 0, len(placeItems))
	for _, placeItem := range placeItems {
		place, err := db.GetPlaceById(ctx, placeItem.PlaceId)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				// Orphaned menu entry; skip it rather than failing the lookup.
				logger.Printf("place %s missing for place item %s", placeItem.PlaceId, placeItem.Id)
				continue
			}
			return nil, err
		}

		item, err := db.GetItemById(ctx, placeItem.ItemId)
		if err != nil && !errors.Is(err, mongodb.ErrRecordNotFound) {
			return nil, err
		}

		rating, err := ratings.GetByScope(db, ctx, placeItem.PlaceId, &placeItem.Id)
		if err != nil {
			return nil, err
		}

		reviews, err := loadOfferingReviews(db, ctx, placeItem.Id, skip, limit)
		if err != nil {
			return nil, err
		}

		offerings = append(offerings, Offering{
			PlaceId:     place.Id,
			PlaceName:   place.Name,
			Address:     place.Address,
			PlaceItemId: placeItem.Id,
			Price:       placeItem.Price,
			Diet:        placeItem.Diet,
			Item:        MapDbItemToApiItem(item),
			Rating:      rating,
			Reviews:     reviews,
		})
	}

	return offerings, nil
}

func resolvePlaceItems(db *mongodb.DB, ctx context.Context, ref LocateRef) ([]mongodb.PlaceItemDb, error) {
	if ref.PlaceItemId != "" {
		placeItem, err := db.GetPlaceItemById(ctx, ref.PlaceItemId)
		if err != nil {
			return nil, err
		}
		return []mongodb.PlaceItemDb{placeItem}, nil
	}
	if ref.ItemId != "" {
		return db.GetPlaceItemsByItemId(ctx, ref.ItemId)
	}
	return nil, ErrLocateRefMissing
}

func loadOfferingReviews(db *mongodb.DB, ctx context.Context, placeItemId string, skip, limit int64) ([]OfferingReview, error) {
	dbReviews, err := db.GetReviewsPageByPlaceItem(ctx, placeItemId, skip, limit)
	if err != nil {
		return nil, err
	}

	customerIds := make([]string, 0, len(dbReviews))
	for _, review := range dbReviews {
		customerIds = append(customerIds, review.CustomerId)
	}

	// Reviewer enrichment is best-effort: a failed projection fetch leaves
	// the reviews anonymous instead of failing the read.
	summaries, err := db.GetCustomerSummaries(ctx, customerIds)
	if err != nil {
		logx.FromContext(ctx).Printf("failed to load reviewer summaries for place item %s: %v", placeItemId, err)
		summaries = map[string]mongodb.CustomerSummaryDb{}
	}

	reviews := make([]OfferingReview, 0, len(dbReviews))
	for _, review := range dbReviews {
		offeringReview := OfferingReview{
			Id:           review.Id,
			Taste:        review.Taste,
			Presentation: review.Presentation,
			Service:      review.Service,
			Ambience:     review.Ambience,
			Description:  review.Description,
			Helpful:      review.Helpful,
			NotHelpful:   review.NotHelpful,
			Media:        review.Media,
			CreatedAt:    review.CreatedAt,
		}
		if summary, ok := summaries[review.CustomerId]; ok {
			offeringReview.Customer = &summary
		}
		reviews = append(reviews, offeringReview)
	}

	return reviews, nil
}
