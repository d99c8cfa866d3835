package places

import (
	"regexp"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"go.mongodb.org/mongo-driver/bson"
)

// AddressFilter builds the store-side address filter for a search.
//
// With coordinates present the store only pre-filters to places that carry
// coordinates at all; the radius itself is applied after projection because
// stored coordinates are free-form strings (see geo.WithinRadius).
//
// Without coordinates the filter narrows by city (case-insensitive, default
// city when none given), then optionally by a suburb union and an exact
// postcode. User-supplied text is always quoted before it enters a regex.
func AddressFilter(p SearchParams) bson.M {
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

	if len(p.Suburbs) > 0 {
		quoted := make([]string, 0, len(p.Suburbs))
		for _, suburb := range p.Suburbs {
			if trimmed := strings.TrimSpace(suburb); trimmed != "" {
				quoted = append(quoted, regexp.QuoteMeta(trimmed))
			}
		}
		if len(quoted) > 0 {
			filter["address.suburb"] = bson.M{
				"$regex":   "^(" + strings.Join(quoted, "|") + ")$",
				"$options": "i",
			}
		}
	}

	if p.Postcode != "" {
		filter["address.postcode"] = p.Postcode
	}

	return filter
}
