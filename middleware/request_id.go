package middleware

import (
	"context"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLen = 64
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID reuses a sane incoming X-Request-ID or generates one, stores it
// in the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			generated, err := gonanoid.New()
			if err != nil {
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			id = generated
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the ID assigned by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
