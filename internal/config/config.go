package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment.
// A .env file is honored when present; real env vars win.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	GinMode     string
}

// Load reads configuration from .env and the environment
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        port(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getDefault("LOG_LEVEL", "info"),
		GinMode:     os.Getenv("GIN_MODE"),
	}
}

// port returns the listen address from env or defaults to ":8080"
func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
