package places

import (
	"context"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/generics"
	"github.com/ravichandan/foodie-service-sub000/internal/match"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

/*
Search resolves places by fuzzy name and geography.

Stages, in order:
 1. Store-side address filter (AddressFilter) plus menu/catalog/rating joins.
 2. Post-projection geo radius filter and whole-word name matching (Rank).
 3. Rating joins and the four-key ordering (Rank).
 4. Best-effort pagination: the page is cut from the ranked list; no stable
    total-count guarantee is made across writes.
*/
func Search(db *mongodb.DB, ctx context.Context, p SearchParams) (generics.Page[Result], error) {
	if p.PlaceName == "" && p.Postcode == "" && p.City == "" && len(p.Suburbs) == 0 && !p.HasGeo() {
		return generics.Page[Result]{}, ErrMissingSearchInput
	}

	candidates, err := db.GetPlaceCandidates(ctx, AddressFilter(p))
	if err != nil {
		return generics.Page[Result]{}, err
	}

	ranked := Rank(candidates, p)

	return paginate(ranked, p.PageSize, p.PageNumber), nil
}

func paginate(results []Result, size, page int) generics.Page[Result] {
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	if page <= 0 {
		page = 1
	}

	total := len(results)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := results[start:end]
	if content == nil {
		content = []Result{}
	}

	return generics.Page[Result]{
		Page:         page,
		Size:         len(content),
		TotalPages:   totalPages,
		TotalResults: total,
		Content:      content,
	}
}

func AddPlace(db *mongodb.DB, ctx context.Context, req NewPlaceRequest) (Place, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Place{}, ErrPlaceNameRequired
	}

	stored, err := db.AddPlace(ctx, mongodb.PlaceDb{
		Name:         req.Name,
		SimpleName:   strings.ToLower(match.Normalize(req.Name)),
		Aliases:      req.Aliases,
		Address:      req.Address,
		OpeningTimes: req.OpeningTimes,
		Media:        req.Media,
		FriendlyTags: req.FriendlyTags,
	})
	if err != nil {
		return Place{}, err
	}

	return MapDbPlaceToApiPlace(stored), nil
}

func GetPlaceById(db *mongodb.DB, ctx context.Context, id string) (Place, error) {
	stored, err := db.GetPlaceById(ctx, id)
	if err != nil {
		return Place{}, err
	}
	return MapDbPlaceToApiPlace(stored), nil
}
