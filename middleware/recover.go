package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 response.
func Recover(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic while serving request",
						zap.Any("panic", err),
						zap.String("path", r.URL.Path),
						zap.String("requestId", RequestIDFromContext(r.Context())),
						zap.Stack("stack"))
					writeMessage(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
