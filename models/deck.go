package models

import (
	"hash/fnv"
	"time"

	"gorm.io/gorm"
)

// DeckPaletteSize is the number of colors the frontend cycles through for decks.
const DeckPaletteSize = 9

// Deck represents a named collection of cards
type Deck struct {
	DeckID      string    `gorm:"primaryKey;size:32" json:"deckId"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"not null;size:1000" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Deleted decks keep their row so the ID is never issued again
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Derived from DeckID, never stored
	ColorIndex int `gorm:"-" json:"colorIndex"`
}

// ColorFor maps a deck ID onto a stable palette slot in [1, DeckPaletteSize].
func ColorFor(deckID string) int {
	h := fnv.New32a()
	h.Write([]byte(deckID))
	return int(h.Sum32()%DeckPaletteSize) + 1
}

func (d *Deck) AfterFind(tx *gorm.DB) error {
	d.ColorIndex = ColorFor(d.DeckID)
	return nil
}

func (d *Deck) AfterSave(tx *gorm.DB) error {
	d.ColorIndex = ColorFor(d.DeckID)
	return nil
}
