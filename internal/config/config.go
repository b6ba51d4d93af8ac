package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBPath        string
	DataDir       string // Directory containing trip_details.csv and locations.csv
	MetricsConfig string // Optional YAML file overriding the dynamic measure table
	JWTSecret     string
	LogLevel      string
	LogFormat     string // text or json
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", ":8080"),
		DBPath:        getenv("DB_PATH", "./data/trips.db"),
		DataDir:       getenv("DATA_DIR", "./data"),
		MetricsConfig: os.Getenv("METRICS_CONFIG"),
		JWTSecret:     getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
