// Package placesapi is a thin client for the external place directory used
// to seed the database: place listings with addresses, menus, and the
// free-text popularity strings that seed initial ratings.
package placesapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

func baseURL() string {
	if base := os.Getenv("PLACES_API_URL"); base != "" {
		return base
	}
	return "https://api.placedirectory.dev"
}

func fetch(requestURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("non-2xx status: %s - %s", resp.Status, string(body))
	}

	return io.ReadAll(resp.Body)
}

// FetchPlaces lists places in a city from the external directory.
func FetchPlaces(city string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/places?city=%s", baseURL(), url.QueryEscape(city))
	return fetch(requestURL)
}

// FetchMenu fetches the menu entries for one external place id, including
// the popularity text used to seed initial ratings.
func FetchMenu(placeID string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/places/%s/menu", baseURL(), url.PathEscape(placeID))
	return fetch(requestURL)
}
