package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashcardi-api/models"
)

type deckRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// validate checks the fields that are present. With create set, both must be present.
func (req deckRequest) validate(create bool) error {
	if create && (req.Title == nil || req.Description == nil) {
		return models.Invalid("title and description are required")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return models.Invalid("title of the deck is required")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return models.Invalid("description of the deck is required")
	}
	return nil
}

func (db *DBHandler) findDeck(ctx context.Context, deckID string) (models.Deck, error) {
	var deck models.Deck
	if err := db.WithContext(ctx).Where("deck_id = ?", deckID).First(&deck).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Deck{}, models.ErrNotFound
		}
		return models.Deck{}, err
	}
	return deck, nil
}

// updateDeck writes the editable fields of deck. A deck deleted since it was
// loaded is reported as ErrNotFound instead of being recreated.
func (db *DBHandler) updateDeck(ctx context.Context, deck *models.Deck) error {
	result := db.WithContext(ctx).Model(deck).Updates(map[string]any{
		"title":       deck.Title,
		"description": deck.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// respondDeckLookupError writes the response for a failed findDeck.
func respondDeckLookupError(w http.ResponseWriter, logger *zap.Logger, deckID string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Deck not found.")
		return
	}
	logger.Error("failed to look up deck", zap.String("deckId", deckID), zap.Error(err))
	respondMessage(w, http.StatusInternalServerError, "Error fetching the deck.")
}

// POST /api/deck
func (db *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)

	var req deckRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Info("CreateDeck: invalid request body", zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(true); err != nil {
		respondError(w, logger, err)
		return
	}

	deck := models.Deck{
		Title:       strings.TrimSpace(*req.Title),
		Description: strings.TrimSpace(*req.Description),
	}

	err := db.insertWithSequentialID(r.Context(), logger, db.nextDeckID, func(id string) error {
		deck.DeckID = id
		return db.WithContext(r.Context()).Create(&deck).Error
	})
	if errors.Is(err, errIDGeneration) {
		logger.Error("CreateDeck: failed to generate deck id", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to generate a deck ID.")
		return
	}
	if err != nil {
		logger.Error("CreateDeck: failed to create deck", zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Error creating the deck.")
		return
	}

	logger.Info("CreateDeck: created deck", zap.String("deckId", deck.DeckID))
	respondJSON(w, http.StatusCreated, deck)
}

// GET /api/deck
func (db *DBHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks := []models.Deck{}
	if err := db.WithContext(r.Context()).Order("created_at ASC").Order("deck_id ASC").Find(&decks).Error; err != nil {
		db.log(r).Error("ListDecks: failed to fetch decks", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Error fetching decks.")
		return
	}

	respondJSON(w, http.StatusOK, decks)
}

// GET /api/deck/{deckID}
func (db *DBHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("deckID")
	deck, err := db.findDeck(r.Context(), deckID)
	if err != nil {
		respondDeckLookupError(w, db.log(r), deckID, err)
		return
	}

	respondJSON(w, http.StatusOK, deck)
}

// PUT /api/deck/{deckID}
func (db *DBHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")

	deck, err := db.findDeck(r.Context(), deckID)
	if err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	var req deckRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Info("UpdateDeck: invalid request body", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(false); err != nil {
		respondError(w, logger, err)
		return
	}

	if req.Title != nil {
		deck.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		deck.Description = strings.TrimSpace(*req.Description)
	}

	if err := db.updateDeck(r.Context(), &deck); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Deck not found.")
			return
		}
		logger.Error("UpdateDeck: failed to update deck", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Error updating the deck.")
		return
	}

	logger.Info("UpdateDeck: updated deck", zap.String("deckId", deckID))
	respondJSON(w, http.StatusOK, deck)
}

// DELETE /api/deck/{deckID}
// Cards of the deck are left in place.
func (db *DBHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")

	result := db.WithContext(r.Context()).Where("deck_id = ?", deckID).Delete(&models.Deck{})
	if result.Error != nil {
		logger.Error("DeleteDeck: failed to delete deck", zap.String("deckId", deckID), zap.Error(result.Error))
		respondMessage(w, http.StatusInternalServerError, "Error deleting the deck.")
		return
	}
	if result.RowsAffected == 0 {
		respondMessage(w, http.StatusNotFound, "Deck not found.")
		return
	}

	logger.Info("DeleteDeck: deleted deck", zap.String("deckId", deckID))
	respondMessage(w, http.StatusOK, "Deck deleted successfully.")
}
