package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds document-store configuration.
type DatabaseConfig struct {
	// ConnectionString is the Cosmos DB (MongoDB API) connection string.
	ConnectionString string
	// Database is the database name holding the retail collections.
	Database string
	// ConnectTimeout is the server selection timeout in seconds.
	ConnectTimeout int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. An empty APIKey disables
// authentication; the analytics surface is read-only.
type AuthConfig struct {
	APIKey string
}

// SeedConfig holds document counts for the sample-data generator.
type SeedConfig struct {
	Products  int
	Customers int
	Orders    int
	Reviews   int
	BatchSize int
}

// Load loads configuration from environment variables. A local .env file,
// when present, is read first so the connection string can be kept out of
// the shell environment.
func Load() (*Config, error) {
	// Missing file is fine; existing environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			ConnectionString: getEnv("COSMOS_CONNECTION_STRING", ""),
			Database:         getEnv("DB_NAME", "retail_analytics"),
			ConnectTimeout:   getEnvAsInt("DB_CONNECT_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Seed: SeedConfig{
			Products:  getEnvAsInt("SEED_PRODUCTS", 100),
			Customers: getEnvAsInt("SEED_CUSTOMERS", 200),
			Orders:    getEnvAsInt("SEED_ORDERS", 500),
			Reviews:   getEnvAsInt("SEED_REVIEWS", 300),
			BatchSize: getEnvAsInt("SEED_BATCH_SIZE", 50),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.ConnectionString == "" {
		return fmt.Errorf("COSMOS_CONNECTION_STRING is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.ConnectTimeout < 1 {
		return fmt.Errorf("database connect timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	for name, n := range map[string]int{
		"SEED_PRODUCTS":  c.Seed.Products,
		"SEED_CUSTOMERS": c.Seed.Customers,
		"SEED_ORDERS":    c.Seed.Orders,
		"SEED_REVIEWS":   c.Seed.Reviews,
	} {
		if n < 1 {
			return fmt.Errorf("%s must be at least 1", name)
		}
	}

	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("SEED_BATCH_SIZE must be at least 1")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
