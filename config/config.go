package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read once at startup. The HMAC secret
// and deck TTL are captured here and handed to the services at construction;
// nothing mutates them afterwards.
type Config struct {
	Port           string
	DatabaseURL    string
	SecretKey      string
	DeckExpiresMin int
}

// Load reads .env (if present) and the environment. DATABASE_URL is
// required; everything else has a development default. SECRET_KEY must be
// long and random in production.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      getEnv("SECRET_KEY", "change-me-long-random"),
		DeckExpiresMin: getEnvInt("DECK_EXPIRES_MIN", 10),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s must be an integer, got %q", key, v)
	}
	return n
}
