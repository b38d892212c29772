package cmd

import (
	"fmt"
	"log/slog"
	"strings"
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
	OrderStatsSchedule string
}

// WithDefaults fills the settings that have a sensible local value.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

// DSN renders the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
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
