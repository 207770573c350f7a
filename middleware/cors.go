package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets the single page app at origins call the API.
func CORS(origins []string) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
