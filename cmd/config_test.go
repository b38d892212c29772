package cmd_test

import (
	"log/slog"
	"testing"

	"ordering/cmd"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := cmd.Config{DBHost: "db", HTTPPort: "9000"}.WithDefaults()

	assert.Equal(t, "9000", c.HTTPPort)
	assert.Equal(t, "5432", c.DBPort)
	assert.Equal(t, "disable", c.DBSslMode)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.OrderStatsSchedule)
}

func TestConfig_DSN(t *testing.T) {
	c := cmd.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "orders",
		DBPassword: "secret",
		DBName:     "ordering",
		DBSslMode:  "require",
	}

	assert.Equal(t, "host=localhost port=5432 user=orders password=secret dbname=ordering sslmode=require", c.DSN())
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for level, expected := range tests {
		assert.Equal(t, expected, cmd.Config{LogLevel: level}.SlogLevel(), level)
	}
}
