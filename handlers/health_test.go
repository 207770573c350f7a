package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/flashcardi-api/config"
)

func TestWelcome(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(t, openRouter(h), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to flashcardi backend 8080", rec.Body.String())
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	router := openRouter(h)

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.NoError(t, config.Close(h.DB))
	rec = doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(t, openRouter(h), http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
