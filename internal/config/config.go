package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string

	RedisEnabled  bool
	RedisURL      string
	RedisPassword string
	MoveCacheTTL  time.Duration

	DepthEasy      int
	DepthMedium    int
	DepthHard      int
	MaxSearchDepth int
	BotMoveDelay   time.Duration

	SessionTTL      time.Duration
	CleanupInterval time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" && trimmed != frontendURL {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Search
	depthEasy := GetEnvAsInt("BOT_DEPTH_EASY", 2)
	depthMedium := GetEnvAsInt("BOT_DEPTH_MEDIUM", 4)
	depthHard := GetEnvAsInt("BOT_DEPTH_HARD", 6)
	maxDepth := GetEnvAsInt("MAX_SEARCH_DEPTH", 8)
	if maxDepth < 1 {
		log.Printf("[CONFIG] MAX_SEARCH_DEPTH=%d is too small, using 1", maxDepth)
		maxDepth = 1
	}
	depthEasy = clampDepth("BOT_DEPTH_EASY", depthEasy, maxDepth)
	depthMedium = clampDepth("BOT_DEPTH_MEDIUM", depthMedium, maxDepth)
	depthHard = clampDepth("BOT_DEPTH_HARD", depthHard, maxDepth)

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,

		RedisEnabled:  GetEnvAsBool("REDIS_ENABLED", true),
		RedisURL:      GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		MoveCacheTTL:  GetEnvAsDuration("MOVE_CACHE_TTL_MINUTES", 60, time.Minute),

		DepthEasy:      depthEasy,
		DepthMedium:    depthMedium,
		DepthHard:      depthHard,
		MaxSearchDepth: maxDepth,
		BotMoveDelay:   GetEnvAsDuration("BOT_MOVE_DELAY_MS", 500, time.Millisecond),

		SessionTTL:      GetEnvAsDuration("SESSION_TTL_HOURS", 24, time.Hour),
		CleanupInterval: GetEnvAsDuration("CLEANUP_INTERVAL_MINUTES", 60, time.Minute),
	}

	return AppConfig
}

func clampDepth(key string, depth, maxDepth int) int {
	if depth < 0 {
		log.Printf("Invalid depth for %s: %d, using 0", key, depth)
		return 0
	}
	if depth > maxDepth {
		log.Printf("Depth for %s (%d) exceeds MAX_SEARCH_DEPTH, using %d", key, depth, maxDepth)
		return maxDepth
	}
	return depth
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads an integer count of unit.
func GetEnvAsDuration(key string, defaultValue int, unit time.Duration) time.Duration {
	return time.Duration(GetEnvAsInt(key, defaultValue)) * unit
}
