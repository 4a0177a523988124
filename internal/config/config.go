package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// WebDAV object store for uploaded images.
	StorageURL      string
	StorageUsername string
	StoragePassword string

	// Optional; venue geocoding is skipped when empty.
	GoogleMapsAPIKey string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/eventadmin?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		StorageURL:       os.Getenv("STORAGE_URL"),
		StorageUsername:  os.Getenv("STORAGE_USERNAME"),
		StoragePassword:  os.Getenv("STORAGE_PASSWORD"),
		GoogleMapsAPIKey: os.Getenv("GCP_API_KEY"),
	}
}

// Validate reports missing required configuration. The server must not start
// without a session secret or a storage endpoint.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET has not been defined")
	}
	if c.StorageURL == "" {
		return fmt.Errorf("STORAGE_URL has not been defined")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
