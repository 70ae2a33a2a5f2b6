package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process-wide configuration, loaded once at startup.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	FreeListings int
}

var Cfg Config

// Load reads the .env file if present, then the environment, and fills Cfg.
// It must be called before db.InitDB and utils.InitJWT.
func Load() error {
	// A missing .env file is not an error: production sets real env vars.
	_ = godotenv.Load()

	Cfg = Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DB_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		FreeListings: getEnvInt("FREE_LISTINGS", 3),
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
