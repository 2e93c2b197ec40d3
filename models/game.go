package models

import (
	"time"

	"gorm.io/datatypes"
)

// Game is one memory-match session. The deck is generated once at start and
// never mutated; the row is written in a single insert so a retrievable game
// always carries its token. Expiry is enforced at read time, not by deletion.
type Game struct {
	ID        string         `gorm:"primaryKey" json:"id"` // uuid
	DeckJSON  datatypes.JSON `gorm:"type:json" json:"-"`   // shuffled symbol indices
	DeckToken string         `gorm:"not null" json:"deck_token"`
	ExpiresAt time.Time      `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
}
