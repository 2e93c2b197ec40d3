package routes

import (
	"github.com/matchpairs/memory-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ----------------------
	// Game routes
	// ----------------------
	r.POST("/game/start", controllers.StartGame)  // Issue deck + token
	r.GET("/game/reveal", controllers.RevealCard) // Reveal one position

	// ----------------------
	// Score routes
	// ----------------------
	r.POST("/score/submit", controllers.SubmitScore) // Record final score
	r.GET("/score/last", controllers.LastScore)      // Most recent score

	// ----------------------
	// Leaderboard
	// ----------------------
	r.GET("/leaderboard/top3", controllers.Leaderboard)

	// ----------------------
	// Health
	// ----------------------
	r.GET("/health", controllers.Health)
}
