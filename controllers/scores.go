package controllers

import (
	"net/http"

	"github.com/matchpairs/memory-backend/services"
	"github.com/matchpairs/memory-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// SubmitScore records a finished game's score. Each call appends a row, so
// client retries show up as duplicate scores.
// POST /score/submit {device_id, game_id, score, deck_token}
func SubmitScore(c *gin.Context) {
	var req struct {
		DeviceID  string `json:"device_id"`
		GameID    string `json:"game_id"`
		Score     *int64 `json:"score"` // pointer so a legitimate 0 passes
		DeckToken string `json:"deck_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.DeviceID == "" || req.GameID == "" || req.Score == nil || req.DeckToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing fields"})
		return
	}

	if err := services.Game.SubmitScore(req.DeviceID, req.GameID, *req.Score, req.DeckToken); err != nil {
		abortWithGameError(c, "/score/submit", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LastScore returns the device's most recent score, or nulls when there is
// none. GET /score/last?device_id
func LastScore(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "device_id required"})
		return
	}

	result, err := services.Leaderboard.LastScore(deviceID)
	if err != nil {
		logger.Errorf("/score/last failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"device_id":  deviceID,
		"last_score": result.Score,
		"updated_at": result.UpdatedAt,
	})
}

// Leaderboard returns the top three scores, ties won by the earliest
// submission. GET /leaderboard/top3
func Leaderboard(c *gin.Context) {
	entries, err := services.Leaderboard.Top(services.DefaultTopSize)
	if err != nil {
		logger.Errorf("/leaderboard/top3 failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
