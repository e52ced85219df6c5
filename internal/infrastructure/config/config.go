package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type Config struct {
	ServerPort int
	ServerURL  string

	// SelfBaseURL is the base URL the summary client uses to call this
	// service's own read endpoint over loopback.
	SelfBaseURL string

	StorageDriver string
	DB            DBConfig

	RequestTimeout time.Duration

	RateLimitRPS   int
	RateLimitBurst int
	RateLimitTTL   time.Duration
}

// LoadConfig loads configuration from environment variables, logging with zap
func LoadConfig(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on system environment")
	}

	getInt := func(key string, defaultVal int) (int, error) {
		valStr := getEnv(key, "")
		if valStr == "" {
			logger.Info("Using default value", zap.String("key", key), zap.Int("default", defaultVal))
			return defaultVal, nil
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			return 0, fmt.Errorf("invalid int value for %s: %w", key, err)
		}
		return val, nil
	}

	getDuration := func(key string, defaultVal time.Duration) (time.Duration, error) {
		valStr := getEnv(key, "")
		if valStr == "" {
			logger.Info("Using default duration", zap.String("key", key), zap.String("default", defaultVal.String()))
			return defaultVal, nil
		}
		val, err := time.ParseDuration(valStr)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value for %s: %w", key, err)
		}
		return val, nil
	}

	cfg := &Config{
		ServerURL:   getEnv("SERVER_URL", "http://localhost:8080"),
		SelfBaseURL: getEnv("SELF_BASE_URL", ""),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageDriverMemory),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "owner"),
			Password: getEnv("DB_PASSWORD", "ownerTest"),
			Name:     getEnv("DB_NAME", "accounts"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	// The summary client calls the service on its own public URL unless
	// told otherwise.
	if cfg.SelfBaseURL == "" {
		cfg.SelfBaseURL = cfg.ServerURL
	}

	var err error
	if cfg.ServerPort, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.DB.Port, err = getInt("DB_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getInt("RATE_LIMIT_RPS", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 200); err != nil {
		return nil, err
	}
	if cfg.RateLimitTTL, err = getDuration("RATE_LIMIT_TTL", 3*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return nil, err
	}

	logger.Info("Configuration loaded successfully")
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Validate ensures configuration values are valid
func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("ServerPort must be valid: got %d", c.ServerPort)
	}
	if c.StorageDriver != StorageDriverMemory && c.StorageDriver != StorageDriverPostgres {
		return fmt.Errorf("StorageDriver must be %q or %q: got %q",
			StorageDriverMemory, StorageDriverPostgres, c.StorageDriver)
	}
	if c.StorageDriver == StorageDriverPostgres && (c.DB.Port <= 0 || c.DB.Port > 65535) {
		return fmt.Errorf("DBPort must be valid: got %d", c.DB.Port)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("RequestTimeout must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit values must be positive")
	}
	return nil
}
