package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultTopSize is the leaderboard length when the caller has no opinion.
const DefaultTopSize = 3

// LeaderboardService is a read-only view over submitted scores.
type LeaderboardService struct {
	db *gorm.DB
}

var Leaderboard *LeaderboardService

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type LeaderboardEntry struct {
	DeviceID  string    `json:"device_id"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Top returns the n highest scores, ties broken by earliest submission.
func (s *LeaderboardService) Top(n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultTopSize
	}

	entries := []LeaderboardEntry{}
	err := s.db.Table("scores").
		Select("players.device_id, scores.score, scores.created_at").
		Joins("JOIN players ON players.id = scores.player_id").
		Order("scores.score DESC").
		Order("scores.created_at ASC").
		Limit(n).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return entries, nil
}

type LastScoreResult struct {
	Score     *int64
	UpdatedAt *time.Time
}

// LastScore returns the player's most recent score by creation time, or nil
// fields when the player is unknown or has no scores.
func (s *LeaderboardService) LastScore(deviceID string) (*LastScoreResult, error) {
	var row struct {
		Score     int64
		CreatedAt time.Time
	}
	err := s.db.Table("scores").
		Select("scores.score, scores.created_at").
		Joins("JOIN players ON players.id = scores.player_id").
		Where("players.device_id = ?", deviceID).
		Order("scores.created_at DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("query last score: %w", err)
	}
	if row.CreatedAt.IsZero() {
		return &LastScoreResult{}, nil
	}
	return &LastScoreResult{Score: &row.Score, UpdatedAt: &row.CreatedAt}, nil
}
