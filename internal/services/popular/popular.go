package popular

import (
	"context"
	"regexp"

	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

/*
Popular assembles the "popular" feed for a location: the top 6 items by
taste/presentation among aggregates clearing the review threshold, followed
by the top 2 places by service/ambience. The two lists are deliberately
concatenated, not merged by a unified score.
*/
func Popular(db *mongodb.DB, ctx context.Context, p Params) (Feed, error) {
	if p.City == "" && p.Postcode == "" && p.Suburb == "" && !p.HasGeo() {
		return Feed{}, ErrMissingLocation
	}

	itemCandidates, err := db.GetPlaceItemCandidates(ctx, dietFilter(p.Diets), placeItemPlaceFilter(p))
	if err != nil {
		return Feed{}, err
	}

	placeCandidates, err := db.GetPlaceCandidates(ctx, placeAddressFilter(p))
	if err != nil {
		return Feed{}, err
	}

	return Feed{
		Items:  RankItems(itemCandidates, p, config.PopularMinReviews()),
		Places: RankPlaces(placeCandidates, p),
	}, nil
}

// dietFilter restricts menu entries to the requested diet codes; an empty
// set applies no restriction.
func dietFilter(diets []int) bson.M {
	if len(diets) == 0 {
		return bson.M{}
	}
	return bson.M{"diet": bson.M{"$in": diets}}
}

// placeAddressFilter narrows the place fetch store-side: coordinate
// presence for geo queries, otherwise city (default city when none given)
// plus an exact postcode. The precise policy, including the geo radius and
// the suburb match, is re-applied post-projection by matchesAddress.
func placeAddressFilter(p Params) bson.M {
	if p.HasGeo() {
		return bson.M{
			"address.latitude":  bson.M{"$gt": ""},
			"address.longitude": bson.M{"$gt": ""},
		}
	}

	city := p.City
	if city == "" {
		city = config.DefaultCity()
	}
	filter := bson.M{
		"address.city": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(city) + "$",
			"$options": "i",
		},
	}
	if p.Postcode != "" {
		filter["address.postcode"] = p.Postcode
	}
	return filter
}

// placeItemPlaceFilter is the same policy keyed under the joined place
// document of the menu-entry pipeline.
func placeItemPlaceFilter(p Params) bson.M {
	filter := bson.M{}
	for key, value := range placeAddressFilter(p) {
		filter["place."+key] = value
	}
	return filter
}
