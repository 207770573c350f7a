package models

import (
	"time"

	"gorm.io/gorm"
)

// Card is a front/back text pair belonging to one deck
type Card struct {
	CardID    string         `gorm:"primaryKey;size:48" json:"cardId"`
	DeckID    string         `gorm:"not null;size:32;index" json:"deckId"`
	FrontText string         `gorm:"not null;size:2000" json:"frontText"`
	BackText  string         `gorm:"not null;size:2000" json:"backText"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
