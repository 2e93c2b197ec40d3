package controllers

import (
	"net/http"
	"time"

	"github.com/matchpairs/memory-backend/config"

	"github.com/gin-gonic/gin"
)

// Health pings the database and reports liveness.
// GET /health
func Health(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": timestamp,
			"database":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": timestamp,
		"database":  "connected",
	})
}
