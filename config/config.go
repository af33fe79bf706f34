package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// JWT Configuration
	JWTSecret   string
	JWTTTLHours int
	// Redis Configuration (optional, caches GitHub proxy responses)
	RedisURL      string
	RedisPassword string
	// GitHub proxy Configuration
	GithubToken        string
	GithubCacheSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// JWT Configuration
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// GitHub proxy Configuration
		GithubToken:        getEnv("GITHUB_TOKEN", ""),
		GithubCacheSeconds: getEnvInt("GITHUB_CACHE_SECONDS", 600), // 10 minute cache
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued tokens will not verify across restarts.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. GitHub responses will not be cached.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
