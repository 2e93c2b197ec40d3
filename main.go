package main

import (
	"log"
	"time"

	"github.com/matchpairs/memory-backend/config"
	"github.com/matchpairs/memory-backend/routes"
	"github.com/matchpairs/memory-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	// Setup REST routes
	routes.SetupRoutes(r)

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database
	db := config.SetupDatabase(cfg.DatabaseURL)

	// Initialize game + leaderboard services
	services.InitGameService(db, []byte(cfg.SecretKey), time.Duration(cfg.DeckExpiresMin)*time.Minute)

	// Setup Gin router
	router := setupRouter()

	// Start server
	log.Printf("🚀 Memory backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
