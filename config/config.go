package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// MongoDB configuration
	MongoURI     string
	DatabaseName string

	// Server configuration
	Port string

	// Upload limits
	MaxTranscriptBytes int

	// Bootstrap admin credentials, created on startup when missing
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	cfg := &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:       getEnv("MONGO_DB_NAME", "chat_audit"),
		Port:               getEnv("PORT", "8080"),
		MaxTranscriptBytes: getEnvInt("MAX_TRANSCRIPT_BYTES", 10*1024*1024),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required configuration
	if cfg.MongoURI == "" {
		slog.Error("MONGO_URI not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer value, using default", "key", key, "value", value)
		return defaultValue
	}
	return parsed
}
