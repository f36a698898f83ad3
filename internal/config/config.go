package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Name     string
}

// JWTConfig holds bearer-token validation settings.
type JWTConfig struct {
	SigningKey string
	Expiration time.Duration
}

// RedisConfig holds the rate-limiter backend settings. An empty Addr
// disables the limiter.
type RedisConfig struct {
	Addr       string
	Password   string
	RateLimit  int
	RateWindow time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// CORSConfig holds the allowed cross-origin request origins.
type CORSConfig struct {
	Origins []string
}

// Load reads the application configuration from environment variables,
// after loading a .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			User:     getEnv("DBUSER", "root"),
			Password: getEnv("DBPWD", ""),
			Host:     getEnv("DBHOST", "localhost"),
			Name:     getEnv("DBNAME", "test"),
		},
		JWT: JWTConfig{
			SigningKey: getEnv("JWT_SECRET", "contactsapisecretkey"),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			RateLimit:  getEnvAsInt("RATE_LIMIT", 10),
			RateWindow: getEnvAsDuration("RATE_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
		},
	}
}

// DSN returns the MySQL data source name for the configured database.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Name)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Helper functions to get environment variables with defaults.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
