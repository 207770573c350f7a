package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashcardi-api/models"
	"github.com/andrewpaige1/flashcardi-api/utils"
)

// maxCreateAttempts bounds the retries when a concurrent create took the generated ID.
const maxCreateAttempts = 3

var errIDGeneration = errors.New("id generation failed")

// latestID returns the numerically highest value of column that starts with
// prefix, or "" when there is none. Soft-deleted rows count, so a deleted ID
// is never handed out again. All candidates share the prefix, so longer
// means larger and equal lengths compare lexicographically.
func latestID(tx *gorm.DB, model any, column, prefix string) (string, error) {
	var ids []string
	err := tx.Unscoped().Model(model).
		Where(column+" LIKE ?", prefix+"%").
		Order("LENGTH(" + column + ") DESC").
		Order(column + " DESC").
		Limit(1).
		Pluck(column, &ids).Error
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

func (db *DBHandler) nextDeckID(ctx context.Context) (string, error) {
	prefix := utils.DeckPrefix(db.today())
	last, err := latestID(db.WithContext(ctx), &models.Deck{}, "deck_id", prefix)
	if err != nil {
		return "", fmt.Errorf("failed to look up latest deck id: %w", err)
	}
	return utils.NextSequentialID(prefix, last)
}

func (db *DBHandler) nextCardID(ctx context.Context, deckID string) (string, error) {
	prefix := utils.CardPrefix(deckID)
	last, err := latestID(db.WithContext(ctx).Where("deck_id = ?", deckID), &models.Card{}, "card_id", prefix)
	if err != nil {
		return "", fmt.Errorf("failed to look up latest card id: %w", err)
	}
	return utils.NextSequentialID(prefix, last)
}

// insertWithSequentialID generates an ID with next and hands it to insert,
// retrying with a fresh ID when the insert hits a duplicate key.
func (db *DBHandler) insertWithSequentialID(
	ctx context.Context,
	logger *zap.Logger,
	next func(context.Context) (string, error),
	insert func(id string) error,
) error {
	for attempt := 1; ; attempt++ {
		id, err := next(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", errIDGeneration, err)
		}

		err = insert(id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt == maxCreateAttempts {
			return err
		}
		logger.Warn("generated id already taken, retrying",
			zap.String("id", id),
			zap.Int("attempt", attempt))
	}
}
