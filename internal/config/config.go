package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"cinehall/internal/cache"
	"cinehall/internal/messaging"
	"cinehall/internal/storage"
)

// Config holds the application configuration, loaded from environment
// variables with usable local defaults.
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	// StorageBackend selects the order store: "file", "postgres" or
	// "none".
	StorageBackend string
	DataDir        string
	Postgres       storage.PostgresConfig

	CacheEnabled bool
	Cache        cache.Config

	NATS messaging.Config
}

// Load reads configuration from the environment. A .env file is applied
// first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", "data"),
		Postgres: storage.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "cinehall"),
			Password: getEnv("DB_PASSWORD", "cinehall"),
			DBName:   getEnv("DB_NAME", "cinehall"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		CacheEnabled: getEnvBool("CACHE_ENABLED", false),
		Cache: cache.Config{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("CACHE_TTL_SEC", 30)) * time.Second,
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "cinehall"),
			ClientID:  getEnv("NATS_CLIENT_ID", "cinehall-api"),
			Enabled:   getEnvBool("NATS_ENABLED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}
