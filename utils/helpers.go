package utils

import (
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// GetSubject returns the "sub" claim of a request that passed token validation.
func GetSubject(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims == nil {
		return "", false
	}
	return claims.RegisteredClaims.Subject, true
}
