package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"

	"github.com/andrewpaige1/flashcardi-api/config"
	"github.com/andrewpaige1/flashcardi-api/utils"
)

// EnsureValidToken returns a middleware that requires an HS256 bearer token
// signed with cfg.JWTSecret. When no secret is configured every request passes.
func EnsureValidToken(cfg config.Auth, logger *zap.Logger) (Middleware, error) {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler { return next }, nil
	}

	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("rejected bearer token",
			zap.Error(err),
			zap.String("requestId", RequestIDFromContext(r.Context())))
		if errors.Is(err, jwtmiddleware.ErrJWTMissing) {
			writeMessage(w, http.StatusUnauthorized, "Authorization token is required")
			return
		}
		writeMessage(w, http.StatusUnauthorized, "Invalid authorization token")
	}

	checker := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(next http.Handler) http.Handler {
		return checker.CheckJWT(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if subject, ok := utils.GetSubject(r); ok {
				logger.Debug("authenticated request",
					zap.String("subject", subject),
					zap.String("requestId", RequestIDFromContext(r.Context())))
			}
			next.ServeHTTP(w, r)
		}))
	}, nil
}
