package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN             string
	Environment       string
	HTTPPort          string
	MigrationsPath    string
	DefaultWeeksAhead int
	AutoGenerate      bool
	FontPath          string
	AllowedOrigins    []string
}

func Load() (*Config, error) {
	// Пробуємо завантажити .env (ігноруємо помилку, якщо файлу немає)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DBDSN:             os.Getenv("DB_DSN"),
		Environment:       getEnv("ENV", "development"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "migrations"),
		DefaultWeeksAhead: getEnvInt("DEFAULT_WEEKS_AHEAD", 8),
		AutoGenerate:      getEnvBool("AUTO_GENERATE", true),
		FontPath:          os.Getenv("FONT_PATH"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	if cfg.DefaultWeeksAhead < 1 || cfg.DefaultWeeksAhead > 52 {
		return nil, fmt.Errorf("DEFAULT_WEEKS_AHEAD must be between 1 and 52, got %d", cfg.DefaultWeeksAhead)
	}

	return cfg, nil
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
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
