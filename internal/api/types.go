package api

import "net/http"

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"errorMessage"`
}

// PublicPaths lists the exact method+path pairs that skip authentication.
// Parameterized paths cannot be listed here; IsPublicPath handles those by
// leaving every GET open.
var PublicPaths = map[string]bool{
	"GET /":        true,
	"POST /login":  true,
	"POST /signup": true,
}

// IsPublicPath reports whether a request may skip authentication. All reads
// are public; writes need a token unless listed in PublicPaths.
func IsPublicPath(method, path string) bool {
	if method == http.MethodGet {
		return true
	}
	return PublicPaths[method+" "+path]
}
