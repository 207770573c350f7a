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

type cardRequest struct {
	FrontText *string `json:"frontText,omitempty"`
	BackText  *string `json:"backText,omitempty"`
}

func (req cardRequest) validate(create bool) error {
	if create && (req.FrontText == nil || req.BackText == nil) {
		return models.Invalid("frontText and backText are required")
	}
	if req.FrontText != nil && strings.TrimSpace(*req.FrontText) == "" {
		return models.Invalid("front text of the card is required")
	}
	if req.BackText != nil && strings.TrimSpace(*req.BackText) == "" {
		return models.Invalid("back text of the card is required")
	}
	return nil
}

// findCard loads a card of deckID. A card that belongs to another deck is not found.
func (db *DBHandler) findCard(ctx context.Context, deckID, cardID string) (models.Card, error) {
	var card models.Card
	err := db.WithContext(ctx).Where("card_id = ? AND deck_id = ?", cardID, deckID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Card{}, models.ErrNotFound
	}
	return card, err
}

func (db *DBHandler) updateCard(ctx context.Context, card *models.Card) error {
	result := db.WithContext(ctx).Model(card).Updates(map[string]any{
		"front_text": card.FrontText,
		"back_text":  card.BackText,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// POST /api/deck/{deckID}/card
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")

	if _, err := db.findDeck(r.Context(), deckID); err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	var req cardRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Info("CreateCard: invalid request body", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(true); err != nil {
		respondError(w, logger, err)
		return
	}

	card := models.Card{
		DeckID:    deckID,
		FrontText: strings.TrimSpace(*req.FrontText),
		BackText:  strings.TrimSpace(*req.BackText),
	}

	next := func(ctx context.Context) (string, error) { return db.nextCardID(ctx, deckID) }
	err := db.insertWithSequentialID(r.Context(), logger, next, func(id string) error {
		card.CardID = id
		return db.WithContext(r.Context()).Create(&card).Error
	})
	if errors.Is(err, errIDGeneration) {
		logger.Error("CreateCard: failed to generate card id", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Failed to generate a card ID.")
		return
	}
	if err != nil {
		logger.Error("CreateCard: failed to create card", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Error creating the card.")
		return
	}

	logger.Info("CreateCard: created card", zap.String("deckId", deckID), zap.String("cardId", card.CardID))
	respondJSON(w, http.StatusCreated, card)
}

// GET /api/deck/{deckID}/card
func (db *DBHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")

	if _, err := db.findDeck(r.Context(), deckID); err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	cards := []models.Card{}
	if err := db.WithContext(r.Context()).Where("deck_id = ?", deckID).Order("created_at ASC").Order("card_id ASC").Find(&cards).Error; err != nil {
		logger.Error("ListCards: failed to fetch cards", zap.String("deckId", deckID), zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Error fetching cards.")
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

// GET /api/deck/{deckID}/card/{cardID}
func (db *DBHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")
	cardID := r.PathValue("cardID")

	if _, err := db.findDeck(r.Context(), deckID); err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	card, err := db.findCard(r.Context(), deckID, cardID)
	if err != nil {
		respondCardLookupError(w, logger, cardID, err)
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// PUT /api/deck/{deckID}/card/{cardID}
func (db *DBHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")
	cardID := r.PathValue("cardID")

	if _, err := db.findDeck(r.Context(), deckID); err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	card, err := db.findCard(r.Context(), deckID, cardID)
	if err != nil {
		respondCardLookupError(w, logger, cardID, err)
		return
	}

	var req cardRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.Info("UpdateCard: invalid request body", zap.String("cardId", cardID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.validate(false); err != nil {
		respondError(w, logger, err)
		return
	}

	if req.FrontText != nil {
		card.FrontText = strings.TrimSpace(*req.FrontText)
	}
	if req.BackText != nil {
		card.BackText = strings.TrimSpace(*req.BackText)
	}

	if err := db.updateCard(r.Context(), &card); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Card not found.")
			return
		}
		logger.Error("UpdateCard: failed to update card", zap.String("cardId", cardID), zap.Error(err))
		respondMessage(w, http.StatusBadRequest, "Error updating the card.")
		return
	}

	logger.Info("UpdateCard: updated card", zap.String("deckId", deckID), zap.String("cardId", cardID))
	respondJSON(w, http.StatusOK, card)
}

// DELETE /api/deck/{deckID}/card/{cardID}
func (db *DBHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := db.log(r)
	deckID := r.PathValue("deckID")
	cardID := r.PathValue("cardID")

	if _, err := db.findDeck(r.Context(), deckID); err != nil {
		respondDeckLookupError(w, logger, deckID, err)
		return
	}

	result := db.WithContext(r.Context()).Where("card_id = ? AND deck_id = ?", cardID, deckID).Delete(&models.Card{})
	if result.Error != nil {
		logger.Error("DeleteCard: failed to delete card", zap.String("cardId", cardID), zap.Error(result.Error))
		respondMessage(w, http.StatusInternalServerError, "Error deleting the card.")
		return
	}
	if result.RowsAffected == 0 {
		respondMessage(w, http.StatusNotFound, "Card not found.")
		return
	}

	logger.Info("DeleteCard: deleted card", zap.String("deckId", deckID), zap.String("cardId", cardID))
	respondMessage(w, http.StatusOK, "Card deleted successfully.")
}

func respondCardLookupError(w http.ResponseWriter, logger *zap.Logger, cardID string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Card not found.")
		return
	}
	logger.Error("failed to look up card", zap.String("cardId", cardID), zap.Error(err))
	respondMessage(w, http.StatusInternalServerError, "Error fetching the card.")
}
