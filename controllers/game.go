package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/matchpairs/memory-backend/services"
	"github.com/matchpairs/memory-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// StartGame issues a fresh shuffled deck and its signed token.
// POST /game/start {device_id, num_pairs?}
func StartGame(c *gin.Context) {
	var req struct {
		DeviceID string `json:"device_id"`
		NumPairs int    `json:"num_pairs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.DeviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "device_id is required"})
		return
	}

	result, err := services.Game.StartGame(req.DeviceID, req.NumPairs, c.ClientIP())
	if err != nil {
		logger.Errorf("/game/start failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_id":     result.GameID,
		"total_cards": result.TotalCards,
		"deck_token":  result.DeckToken,
		"expires_at":  result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// RevealCard returns the card value at one deck position, trusting only the
// token. GET /game/reveal?game_id&position&deck_token
func RevealCard(c *gin.Context) {
	gameID := c.Query("game_id")
	deckToken := c.Query("deck_token")
	if gameID == "" || deckToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing params"})
		return
	}

	position, err := strconv.Atoi(c.Query("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid position"})
		return
	}

	cardValue, err := services.Game.RevealCard(gameID, position, deckToken)
	if err != nil {
		abortWithGameError(c, "/game/reveal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"position": position, "card_value": cardValue})
}

// abortWithGameError translates service errors into the HTTP taxonomy:
// token and validation failures become 400 with a short detail, an unknown
// game is 404, and anything unexpected is logged and returned as a bare 500.
func abortWithGameError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Game not found"})
	case errors.Is(err, services.ErrMalformedToken),
		errors.Is(err, services.ErrBadSignature),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenGameMismatch),
		errors.Is(err, services.ErrGameExpired),
		errors.Is(err, services.ErrInvalidPosition):
		c.JSON(http.StatusBadRequest, gin.H{"detail": detailFor(err)})
	default:
		logger.Errorf("%s failed: %v", route, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

func detailFor(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenGameMismatch):
		return "game/token mismatch"
	case errors.Is(err, services.ErrGameExpired):
		return "Game expired"
	case errors.Is(err, services.ErrInvalidPosition):
		return "Invalid position"
	default:
		return err.Error()
	}
}
