package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	LogLevel           string
	StaleOrderTTL      time.Duration
	StaleOrderSchedule string
}

// Default returns the configuration used for keys absent from the environment.
func Default() Config {
	return Config{
		HTTPPort:           "8080",
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "postgres",
		DBPassword:         "",
		DBName:             "shop",
		DBSslMode:          "disable",
		LogLevel:           "info",
		StaleOrderTTL:      30 * time.Minute,
		StaleOrderSchedule: "0 */5 * * * *",
	}
}

// FromEnv overlays the process environment on Default.
func FromEnv() (Config, error) {
	return fromEnv(Default(), os.Getenv)
}

func fromEnv(c Config, getenv func(string) string) (Config, error) {
	for key, field := range map[string]*string{
		"HTTP_PORT":            &c.HTTPPort,
		"DB_HOST":              &c.DBHost,
		"DB_PORT":              &c.DBPort,
		"DB_USER":              &c.DBUser,
		"DB_PASSWORD":          &c.DBPassword,
		"DB_NAME":              &c.DBName,
		"DB_SSLMODE":           &c.DBSslMode,
		"LOG_LEVEL":            &c.LogLevel,
		"STALE_ORDER_SCHEDULE": &c.StaleOrderSchedule,
	} {
		if v := getenv(key); v != "" {
			*field = v
		}
	}

	if v := getenv("STALE_ORDER_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STALE_ORDER_TTL %q: %w", v, err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("STALE_ORDER_TTL must be positive, got %s", ttl)
		}
		c.StaleOrderTTL = ttl
	}

	return c, nil
}

// DSN builds the postgres connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
