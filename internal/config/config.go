package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	TraceExporterNone   = "none"
	TraceExporterStdout = "stdout"
)

type Config struct {
	ServiceName       string
	Port              string
	Environment       string
	LogLevel          string
	TraceExporter     string
	StorageDriver     string
	Database          DatabaseConfig
	Admin             AdminConfig
	LowStockThreshold int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds a lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash; empty leaves the API open.
	PasswordHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("LOW_STOCK_THRESHOLD", "5")
	viper.SetDefault("TRACE_EXPORTER", TraceExporterNone)

	viper.AutomaticEnv()

	// .env is optional
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	threshold, err := strconv.Atoi(getEnvOrViper("LOW_STOCK_THRESHOLD", "5"))
	if err != nil {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must be an integer: %w", err)
	}

	cfg := &Config{
		ServiceName:   getEnvOrViper("SERVICE_NAME", "stockroom"),
		Port:          getEnvOrViper("PORT", "8080"),
		Environment:   getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:      getEnvOrViper("LOG_LEVEL", "info"),
		TraceExporter: getEnvOrViper("TRACE_EXPORTER", TraceExporterNone),
		StorageDriver: getEnvOrViper("STORAGE_DRIVER", StorageMemory),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "stockroom"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Admin: AdminConfig{
			PasswordHash: getEnvOrViper("ADMIN_PASSWORD_HASH", ""),
		},
		LowStockThreshold: threshold,
	}

	// Validate
	switch cfg.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.StorageDriver)
	}
	switch cfg.TraceExporter {
	case TraceExporterNone, TraceExporterStdout:
	default:
		return nil, fmt.Errorf("TRACE_EXPORTER must be %q or %q, got %q", TraceExporterNone, TraceExporterStdout, cfg.TraceExporter)
	}
	if cfg.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
