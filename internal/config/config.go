package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/infrastructure/database"
)

// MinJWTSecretLength is the shortest accepted HS256 signing secret, in bytes.
const MinJWTSecretLength = 32

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsDir       string

	// Session configuration
	JWTSecret   string
	JWTIssuer   string
	JWTTokenTTL time.Duration

	// Review event configuration. No brokers disables publishing.
	KafkaBrokers []string
	KafkaTopic   string

	ExportDefaultFormat string

	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 5*time.Minute),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:     getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "remediation_portal"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "./migrations"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTIssuer:           getEnv("JWT_ISSUER", "remediation-portal"),
		JWTTokenTTL:         getEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		KafkaBrokers:        getEnvList("KAFKA_BROKERS"),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "article-review-events"),
		ExportDefaultFormat: getEnv("EXPORT_DEFAULT_FORMAT", string(domain.ExportFormatNDJSON)),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Database returns the pool settings for the configured database.
func (c *Config) Database() database.PoolConfig {
	return database.PoolConfig{
		Host:              c.DBHost,
		Port:              c.DBPort,
		User:              c.DBUser,
		Password:          c.DBPassword,
		Database:          c.DBName,
		SSLMode:           c.DBSSLMode,
		MaxConns:          c.DBMaxConns,
		MinConns:          c.DBMinConns,
		MaxConnLifetime:   c.DBMaxConnLifetime,
		MaxConnIdleTime:   c.DBMaxConnIdleTime,
		HealthCheckPeriod: c.DBHealthCheckPeriod,
	}
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	}
	if c.JWTTokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be positive")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if !domain.IsValidFormat(c.ExportDefaultFormat) {
		return fmt.Errorf("EXPORT_DEFAULT_FORMAT must be one of: ndjson, csv")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
