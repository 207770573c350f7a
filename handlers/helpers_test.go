package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andrewpaige1/flashcardi-api/config"
	"github.com/andrewpaige1/flashcardi-api/middleware"
	"github.com/andrewpaige1/flashcardi-api/models"
)

var testNow = time.Date(2026, time.October, 19, 10, 30, 0, 0, time.UTC)

func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()
	db, err := config.Connect(context.Background(), config.Database{Driver: config.DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.Close(db) })

	h := NewDBHandler(db, zap.NewNop(), time.UTC)
	h.Now = func() time.Time { return testNow }
	return h
}

func openRouter(h *DBHandler) http.Handler {
	noAuth := middleware.Middleware(func(next http.Handler) http.Handler { return next })
	return NewRouter(h, "8080", noAuth)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func createDeck(t *testing.T, router http.Handler, title, description string) models.Deck {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/deck", map[string]string{"title": title, "description": description})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[models.Deck](t, rec)
}

func createCard(t *testing.T, router http.Handler, deckID, front, back string) models.Card {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/api/deck/"+deckID+"/card", map[string]string{"frontText": front, "backText": back})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[models.Card](t, rec)
}

func countRows(t *testing.T, h *DBHandler, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.Model(model).Count(&n).Error)
	return n
}
