package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the process reads from the environment
type Config struct {
	Port    string
	GinMode string

	DB DBConfig

	// JWTSecret signs staff tokens
	JWTSecret   []byte
	AuthEnabled bool

	// bootstrap admin, created at startup when AdminEmail is set
	AdminName     string
	AdminEmail    string
	AdminPassword string

	LogLevel  string
	LogFormat string

	RabbitMQURL      string
	RabbitMQExchange string
}

type DBConfig struct {
	Driver          string // "sqlite" or "postgres"
	Path            string // sqlite file, ":memory:" allowed
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", ""),
		JWTSecret:   []byte(getEnv("JWT_SECRET", "restaurant_api_dev_secret")),
		AuthEnabled: getEnvBool("AUTH_ENABLED", false),

		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),

		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),
		RabbitMQExchange: getEnv("RABBITMQ_EXCHANGE", "restaurant.orders"),

		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:            getEnv("DB_PATH", "restaurant.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "restaurante"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
	}

	if cfg.AdminEmail != "" && len(cfg.AdminPassword) < 6 {
		return nil, fmt.Errorf("invalid admin config: ADMIN_PASSWORD must have at least 6 characters")
	}

	switch cfg.DB.Driver {
	case "sqlite":
		if cfg.DB.Path == "" {
			return nil, fmt.Errorf("invalid DB config: DB_PATH must not be empty")
		}
	case "postgres":
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unsupported driver %q", cfg.DB.Driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
