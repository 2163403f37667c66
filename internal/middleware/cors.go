// Package middleware provides reusable HTTP middleware for the Museums of
// London API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on
// allowedOrigins. Pass ["*"] to permit any origin — the default for this
// public, read-mostly catalogue. All methods and headers used by the API are
// allowed regardless of origin list.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
