package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashcardi-api/middleware"
)

// NewRouter registers every endpoint. protect wraps the routes that modify data.
func NewRouter(db *DBHandler, port string, protect middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	guarded := func(h http.HandlerFunc) http.Handler { return protect(h) }

	mux.HandleFunc("GET /{$}", Welcome(port))
	mux.HandleFunc("GET /health", db.Health)

	// Deck
	mux.Handle("POST /api/deck", guarded(db.CreateDeck))
	mux.HandleFunc("GET /api/deck", db.ListDecks)
	mux.HandleFunc("GET /api/deck/{deckID}", db.GetDeck)
	mux.Handle("PUT /api/deck/{deckID}", guarded(db.UpdateDeck))
	mux.Handle("DELETE /api/deck/{deckID}", guarded(db.DeleteDeck))

	// Card
	mux.Handle("POST /api/deck/{deckID}/card", guarded(db.CreateCard))
	mux.HandleFunc("GET /api/deck/{deckID}/card", db.ListCards)
	mux.HandleFunc("GET /api/deck/{deckID}/card/{cardID}", db.GetCard)
	mux.Handle("PUT /api/deck/{deckID}/card/{cardID}", guarded(db.UpdateCard))
	mux.Handle("DELETE /api/deck/{deckID}/card/{cardID}", guarded(db.DeleteCard))

	return mux
}
