package places

import (
	"sort"

	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/geo"
	"github.com/ravichandan/foodie-service-sub000/internal/match"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

// rankKeys are the sort signals extracted from one result. Places with any
// verified rating data always outrank places with none, and food-quality
// signals win over service/ambience ones.
type rankKeys struct {
	hasItemRating  bool
	hasPlaceRating bool
	itemTaste      float64
	placeService   float64
}

// Rank applies the post-projection stages to the joined candidates: the
// geo radius filter, place- and item-name matching, rating joins, and the
// four-key ordering. It is pure so the ordering rules are testable without
// a store.
func Rank(candidates []mongodb.PlaceCandidateDb, p SearchParams) []Result {
	results := make([]Result, 0, len(candidates))
	keys := make(map[string]rankKeys, len(candidates))

	for _, candidate := range candidates {
		result, ok := evaluate(candidate, p)
		if !ok {
			continue
		}
		keys[result.Id] = extractKeys(result)
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := keys[results[i].Id], keys[results[j].Id]
		if a.hasItemRating != b.hasItemRating {
			return a.hasItemRating
		}
		if a.hasPlaceRating != b.hasPlaceRating {
			return a.hasPlaceRating
		}
		if a.itemTaste != b.itemTaste {
			return a.itemTaste > b.itemTaste
		}
		return a.placeService > b.placeService
	})

	return results
}

// evaluate runs the filter stages for one candidate and assembles its
// result view when every stage passes.
func evaluate(candidate mongodb.PlaceCandidateDb, p SearchParams) (Result, bool) {
	var distance *float64
	if p.HasGeo() {
		radius := config.DefaultSearchRadiusKm()
		if p.DistanceKm != nil {
			radius = *p.DistanceKm
		}
		if !geo.WithinRadius(candidate.Address.Latitude, candidate.Address.Longitude, *p.Latitude, *p.Longitude, radius) {
			return Result{}, false
		}
		if lat, ok := geo.ParseCoord(candidate.Address.Latitude); ok {
			if lon, ok := geo.ParseCoord(candidate.Address.Longitude); ok {
				d := geo.Distance(*p.Latitude, *p.Longitude, lat, lon)
				distance = &d
			}
		}
	}

	if p.PlaceName != "" {
		placeCandidate := match.Candidate{
			Name:       candidate.Name,
			SimpleName: candidate.SimpleName,
			Aliases:    candidate.Aliases,
		}
		if !match.Matches(p.PlaceName, placeCandidate) {
			return Result{}, false
		}
	}

	catalog := make(map[string]mongodb.ItemDb, len(candidate.Catalog))
	for _, item := range candidate.Catalog {
		catalog[item.Id] = item
	}

	placeRating, itemRatings := splitRatings(candidate.Ratings)

	matched := matchMenu(candidate.Menu, catalog, itemRatings, p.ItemName)
	if p.ItemName != "" && len(matched) == 0 {
		return Result{}, false
	}

	return Result{
		Place: Place{
			Id:           candidate.Id,
			Name:         candidate.Name,
			Aliases:      candidate.Aliases,
			Address:      candidate.Address,
			OpeningTimes: candidate.OpeningTimes,
			Media:        candidate.Media,
			FriendlyTags: candidate.FriendlyTags,
		},
		Rating:         placeRating,
		MatchedItems:   matched,
		DistanceMeters: distance,
	}, true
}

// matchMenu collects the menu entries matching the item term, deduplicated
// by catalog item. An empty term matches the whole menu.
func matchMenu(menu []mongodb.PlaceItemDb, catalog map[string]mongodb.ItemDb, itemRatings map[string]*ratings.Aggregate, itemName string) []MatchedItem {
	matched := make([]MatchedItem, 0, len(menu))
	seenItems := make(map[string]bool, len(menu))

	for _, placeItem := range menu {
		item := catalog[placeItem.ItemId]

		if itemName != "" {
			// Both the place-specific name and the catalog name count.
			itemCandidate := match.Candidate{
				Name:       placeItem.Name,
				SimpleName: placeItem.SimpleName,
				Aliases:    append([]string{item.Name}, item.Aliases...),
			}
			if !match.Matches(itemName, itemCandidate) {
				continue
			}
		}

		if seenItems[placeItem.ItemId] {
			continue
		}
		seenItems[placeItem.ItemId] = true

		matched = append(matched, MatchedItem{
			ItemId:      placeItem.ItemId,
			PlaceItemId: placeItem.Id,
			Name:        placeItem.Name,
			Course:      item.Course,
			Cuisines:    item.Cuisines,
			Diet:        placeItem.Diet,
			Price:       placeItem.Price,
			Rating:      itemRatings[placeItem.Id],
		})
	}

	return matched
}

// splitRatings separates a place's joined aggregates into the place-level
// one and a map keyed by place item id.
func splitRatings(joined []mongodb.RatingDb) (*ratings.Aggregate, map[string]*ratings.Aggregate) {
	var placeRating *ratings.Aggregate
	itemRatings := make(map[string]*ratings.Aggregate, len(joined))

	for _, dbRating := range joined {
		rating := ratings.MapDbRatingToApiRating(dbRating)
		if dbRating.PlaceItemId == nil {
			placeRating = &rating
		} else {
			itemRatings[*dbRating.PlaceItemId] = &rating
		}
	}

	return placeRating, itemRatings
}

func extractKeys(result Result) rankKeys {
	keys := rankKeys{}

	if result.Rating != nil {
		keys.hasPlaceRating = true
		if result.Rating.Service != nil {
			keys.placeService = *result.Rating.Service
		}
	}

	for _, item := range result.MatchedItems {
		if item.Rating == nil {
			continue
		}
		keys.hasItemRating = true
		if item.Rating.Taste != nil && *item.Rating.Taste > keys.itemTaste {
			keys.itemTaste = *item.Rating.Taste
		}
	}

	return keys
}
