package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string
	DBName     string

	RedisURL string

	SessionSecret string
	SessionTTL    time.Duration

	AvatarDir string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASS"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "sharegeb_booking"),

		RedisURL: os.Getenv("REDIS_URL"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me"),

		AvatarDir: getEnv("AVATAR_DIR", "web/static/image/avatars"),
	}

	ttlHours := getEnv("SESSION_TTL_HOURS", "24")
	hours, err := strconv.Atoi(ttlHours)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
