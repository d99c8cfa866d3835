package popular

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/geo"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/services/ratings"
)

// matchesAddress applies the popularity address policy to one place: geo
// radius when coordinates are given, otherwise city (default city when
// empty) plus optional suburb and postcode narrowing.
func matchesAddress(address mongodb.AddressDb, p Params) bool {
	if p.HasGeo() {
		radius := config.DefaultSearchRadiusKm()
		if p.DistanceKm != nil {
			radius = *p.DistanceKm
		}
		return geo.WithinRadius(address.Latitude, address.Longitude, *p.Latitude, *p.Longitude, radius)
	}

	city := p.City
	if city == "" {
		city = config.DefaultCity()
	}
	if !strings.EqualFold(address.City, city) {
		return false
	}

	if p.Suburb != "" {
		pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(strings.TrimSpace(p.Suburb)) + `$`)
		if !pattern.MatchString(address.Suburb) {
			return false
		}
	}

	if p.Postcode != "" && address.Postcode != p.Postcode {
		return false
	}

	return true
}

// RankItems selects the popular-items list from the joined menu-entry
// candidates. Only item-scoped aggregates with at least minReviews reviews
// qualify; anything below the threshold is noise regardless of score.
// Ordering is taste descending, then presentation descending.
func RankItems(candidates []mongodb.PlaceItemCandidateDb, p Params, minReviews int) []Item {
	eligible := make([]Item, 0, len(candidates))

	for _, candidate := range candidates {
		if !matchesAddress(candidate.Place.Address, p) {
			continue
		}

		rating, ok := itemScopedRating(candidate.Ratings, candidate.PlaceItemDb.Id)
		if !ok || rating.NoOfReviews < minReviews {
			continue
		}

		eligible = append(eligible, Item{
			PlaceItemId: candidate.PlaceItemDb.Id,
			ItemId:      candidate.ItemId,
			PlaceId:     candidate.PlaceId,
			Name:        candidate.PlaceItemDb.Name,
			PlaceName:   candidate.Place.Name,
			Suburb:      candidate.Place.Address.Suburb,
			Diet:        candidate.Diet,
			Price:       candidate.Price,
			Media:       candidate.Item.Media,
			Rating:      rating,
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i].Rating, eligible[j].Rating
		if at, bt := deref(a.Taste), deref(b.Taste); at != bt {
			return at > bt
		}
		return deref(a.Presentation) > deref(b.Presentation)
	})

	if len(eligible) > maxItems {
		eligible = eligible[:maxItems]
	}
	return eligible
}

// RankPlaces selects the popular-places list from address-filtered place
// candidates joined to their aggregates. Only the place-scoped aggregate
// counts and no review threshold applies at place level. Ordering is
// service descending, then ambience descending.
func RankPlaces(candidates []mongodb.PlaceCandidateDb, p Params) []Place {
	eligible := make([]Place, 0, len(candidates))

	for _, candidate := range candidates {
		if !matchesAddress(candidate.Address, p) {
			continue
		}

		var placeRating *ratings.Aggregate
		for _, dbRating := range candidate.Ratings {
			if dbRating.PlaceItemId == nil {
				rating := ratings.MapDbRatingToApiRating(dbRating)
				placeRating = &rating
				break
			}
		}
		if placeRating == nil {
			continue
		}

		eligible = append(eligible, Place{
			PlaceId: candidate.Id,
			Name:    candidate.Name,
			Address: candidate.Address,
			Rating:  *placeRating,
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i].Rating, eligible[j].Rating
		if as, bs := deref(a.Service), deref(b.Service); as != bs {
			return as > bs
		}
		return deref(a.Ambience) > deref(b.Ambience)
	})

	if len(eligible) > maxPlaces {
		eligible = eligible[:maxPlaces]
	}
	return eligible
}

func itemScopedRating(joined []mongodb.RatingDb, placeItemId string) (ratings.Aggregate, bool) {
	for _, dbRating := range joined {
		if dbRating.PlaceItemId != nil && *dbRating.PlaceItemId == placeItemId {
			return ratings.MapDbRatingToApiRating(dbRating), true
		}
	}
	return ratings.Aggregate{}, false
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
