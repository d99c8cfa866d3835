package config

import (
	"os"
	"strconv"
)

// Tuning values shared across pipelines. All of them come from the
// environment so deployments can adjust them without a rebuild.
const (
	defaultRatingWindowMonths = 2
	defaultPopularMinReviews  = 30
	defaultCity               = "sydney"
	defaultSearchRadiusKm     = 35
)

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}

// RatingWindowMonths is the trailing window, in months, of reviews that
// contribute to a rating aggregate.
func RatingWindowMonths() int {
	return intEnv("RATING_WINDOW_MONTHS", defaultRatingWindowMonths)
}

// PopularMinReviews is the minimum review count an item aggregate needs
// before it can appear in the popular items list.
func PopularMinReviews() int {
	return intEnv("POPULAR_MIN_REVIEWS", defaultPopularMinReviews)
}

// DefaultCity is the city assumed when a search carries no location at all.
func DefaultCity() string {
	if city := os.Getenv("DEFAULT_CITY"); city != "" {
		return city
	}
	return defaultCity
}

// DefaultSearchRadiusKm is the radius applied when a geo search does not
// request one.
func DefaultSearchRadiusKm() float64 {
	return float64(intEnv("SEARCH_RADIUS_KM", defaultSearchRadiusKm))
}

func TokenSecret() string {
	return os.Getenv("TOKEN_SECRET")
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}
