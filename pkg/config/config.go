// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, caching, and rate limiting

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains result cache configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per rate window; 0 disables limiting
	RateLimit int

	// RateWindowSeconds is the rate limit window length
	RateWindowSeconds int
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/none)
	Type string

	// TTLSeconds is the lifetime of a memoized extraction result
	TTLSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level emitted (debug/info/warn/error)
	Level string

	// Format selects the log output format (json/text)
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 86400),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "none" {
		return errors.New("cache type must be 'memory' or 'none'")
	}

	if c.Cache.TTLSeconds < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
