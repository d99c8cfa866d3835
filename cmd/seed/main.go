package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/generics"
	"github.com/ravichandan/foodie-service-sub000/internal/match"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"github.com/ravichandan/foodie-service-sub000/internal/placesapi"
	"github.com/ravichandan/foodie-service-sub000/internal/services/customers"
	"github.com/ravichandan/foodie-service-sub000/internal/services/items"
	"github.com/ravichandan/foodie-service-sub000/internal/services/places"
)

// placePayload mirrors one place listing from the external directory.
type placePayload struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Address struct {
		Line      string `json:"line"`
		Suburb    string `json:"suburb"`
		Postcode  string `json:"postcode"`
		City      string `json:"city"`
		State     string `json:"state"`
		Country   string `json:"country"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"address"`
	Media []string `json:"media"`
}

// menuPayload mirrors one menu entry, including the free-text popularity
// string the directory exposes (e.g. "liked by 87% of 230 diners").
type menuPayload struct {
	Name        string   `json:"name"`
	Course      string   `json:"course"`
	Cuisines    []string `json:"cuisines"`
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients"`
	Popularity  string   `json:"popularity"`
}

var popularityRegex = regexp.MustCompile(`(\d+)%(?:\s+of\s+(\d+))?`)

func main() {
	_ = godotenv.Load()

	city := flag.String("city", config.DefaultCity(), "city to seed places from")
	flag.Parse()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	if err := seedCustomer(db, ctx); err != nil {
		log.Fatalf("Failed to create seed customer: %v", err)
	}

	body, err := placesapi.FetchPlaces(*city)
	if err != nil {
		log.Fatalf("Failed to fetch places for %s: %v", *city, err)
	}

	var listings []placePayload
	if err := json.Unmarshal(body, &listings); err != nil {
		log.Fatalf("Failed to parse place listings: %v", err)
	}

	// Catalog items are shared across places; dedupe by simplified name.
	catalog := map[string]string{}

	for _, listing := range listings {
		place, err := seedPlace(db, ctx, listing)
		if err != nil {
			log.Printf("Skipping place %q: %v", listing.Name, err)
			continue
		}

		if err := seedMenu(db, ctx, place.Id, listing.ID, catalog); err != nil {
			log.Printf("Failed to seed menu for %q: %v", listing.Name, err)
		}
	}

	fmt.Printf("✅ Seeded %d places for %s\n", len(listings), *city)
}

// seedCustomer creates one reviewer account so seeded data has an owner.
// The uuid suffix keeps reruns from tripping the unique username index.
func seedCustomer(db *mongodb.DB, ctx context.Context) error {
	suffix := uuid.NewString()[:8]
	_, err := customers.Signup(db, ctx, customers.SignupRequest{
		Name:     "Seed Reviewer",
		Username: "seed-" + suffix,
		Email:    fmt.Sprintf("seed-%s@example.com", suffix),
		Password: uuid.NewString(),
	})
	return err
}

func seedPlace(db *mongodb.DB, ctx context.Context, listing placePayload) (places.Place, error) {
	return places.AddPlace(db, ctx, places.NewPlaceRequest{
		Name:    listing.Name,
		Aliases: listing.Aliases,
		Address: mongodb.AddressDb{
			Line:      listing.Address.Line,
			Suburb:    listing.Address.Suburb,
			Postcode:  listing.Address.Postcode,
			City:      listing.Address.City,
			State:     listing.Address.State,
			Country:   listing.Address.Country,
			Latitude:  listing.Address.Latitude,
			Longitude: listing.Address.Longitude,
		},
		Media: listing.Media,
	})
}

func seedMenu(db *mongodb.DB, ctx context.Context, placeId, externalId string, catalog map[string]string) error {
	body, err := placesapi.FetchMenu(externalId)
	if err != nil {
		return err
	}

	var menu []menuPayload
	if err := json.Unmarshal(body, &menu); err != nil {
		return err
	}

	for _, entry := range menu {
		itemId, err := resolveCatalogItem(db, ctx, entry, catalog)
		if err != nil {
			log.Printf("Failed to resolve catalog item %q: %v", entry.Name, err)
			continue
		}

		placeItem, err := items.AddPlaceItem(db, ctx, items.NewPlaceItemRequest{
			PlaceId:     placeId,
			ItemId:      itemId,
			Name:        entry.Name,
			Price:       entry.Price,
			Ingredients: entry.Ingredients,
			Popularity:  entry.Popularity,
		})
		if err != nil {
			log.Printf("Failed to add menu entry %q: %v", entry.Name, err)
			continue
		}

		if err := seedInitialRating(db, ctx, placeItem, entry.Popularity); err != nil {
			log.Printf("Failed to seed rating for %q: %v", entry.Name, err)
		}
	}

	return nil
}

func resolveCatalogItem(db *mongodb.DB, ctx context.Context, entry menuPayload, catalog map[string]string) (string, error) {
	key := strings.ToLower(match.Normalize(entry.Name))
	if id, ok := catalog[key]; ok {
		return id, nil
	}

	item, err := items.AddItem(db, ctx, items.NewItemRequest{
		Name:     entry.Name,
		Course:   entry.Course,
		Cuisines: entry.Cuisines,
	})
	if err != nil {
		return "", err
	}

	catalog[key] = item.Id
	return item.Id, nil
}

// seedInitialRating converts the directory's popularity text into a first
// item-scoped aggregate, so ranking has a signal before real reviews
// arrive. A later recompute from actual reviews overwrites it.
func seedInitialRating(db *mongodb.DB, ctx context.Context, placeItem mongodb.PlaceItemDb, popularity string) error {
	m := popularityRegex.FindStringSubmatch(popularity)
	if m == nil {
		return nil
	}

	percent := float64(generics.StringToInt(m[1]))
	if percent > 100 {
		return nil
	}
	taste := 1 + 4*percent/100

	noOfReviews := 0
	if m[2] != "" {
		noOfReviews = generics.StringToInt(m[2])
	}

	_, err := db.UpsertRating(ctx, mongodb.RatingDb{
		PlaceId:      placeItem.PlaceId,
		PlaceItemId:  &placeItem.Id,
		Taste:        &taste,
		Presentation: &taste,
		NoOfReviews:  noOfReviews,
	})
	return err
}
