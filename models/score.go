package models

import "time"

// Score rows are append-only: one row per submission, never updated or
// deleted. "Last score" for a player is the newest row by CreatedAt.
type Score struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlayerID  uint      `gorm:"not null;index" json:"player_id"`
	Score     int64     `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
