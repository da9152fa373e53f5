package config

import (
	"fmt"
	"os"
	"time"

	"fitlife-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Postgres
	DatabaseURL string

	// Redis
	RedisAddr string
	RedisPass string

	// JWT
	JWT jwt.Config
}

// Load reads environment variables into AppConfig. DATABASE_URL and
// JWT_SECRET have no defaults: the process refuses to start without them.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   "fitlife",
			Audience: "fitlife-backoffice",
			TTL:      24 * time.Hour,
		},
	}

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
