package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Port int
}

// StorageConfig holds the local storage configuration
type StorageConfig struct {
	Path string // SQLite file backing the key-value state
}

// AuthConfig holds the authentication configuration
type AuthConfig struct {
	JWTSecret string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "farmstay.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-here"),
		},
	}
}

// Helper functions to read environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
