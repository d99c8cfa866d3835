package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ravichandan/foodie-service-sub000/internal/generics"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) error {
	response, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)

	return nil
}

func respondWithError(w http.ResponseWriter, code int, msg string) error {
	messageBody := ErrorResponse{
		StatusCode:   code,
		ErrorMessage: msg,
	}
	return respondWithJSON(w, code, messageBody)
}

func RespondWithUnauthorized(w http.ResponseWriter, err error) error {
	statusCode := http.StatusUnauthorized
	messageBody := ErrorResponse{
		StatusCode:   statusCode,
		ErrorMessage: formatErrorMessage(err),
	}
	return respondWithJSON(w, statusCode, messageBody)
}

func formatErrorMessage(err error) string {
	errorMsg := err.Error()
	if len(errorMsg) > 0 {
		return strings.ToUpper(errorMsg[:1]) + errorMsg[1:]
	}
	return ""
}

// getErrorStatusCode safely checks if an error is in the ErrorMap by iterating through it
// and using errors.Is() to match errors. This prevents panics when non-hashable errors
// (like MongoDB errors) are passed as map keys.
func getErrorStatusCode(errMap map[error]int, err error) (int, bool) {
	for predefinedErr, statusCode := range errMap {
		if errors.Is(err, predefinedErr) {
			return statusCode, true
		}
	}
	return 0, false
}

// parseCsvQuery splits a comma-separated query value into trimmed non-empty
// parts.
func parseCsvQuery(val string) []string {
	if val == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// parseDietCodes parses a comma-separated list of diet codes, dropping
// anything non-numeric.
func parseDietCodes(val string) []int {
	var codes []int
	for _, part := range parseCsvQuery(val) {
		if code := generics.StringToInt(part); code != 0 {
			codes = append(codes, code)
		}
	}
	return codes
}
