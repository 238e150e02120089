package cmd

import (
	"log/slog"
	"testing"

	"catering/internal/jobs"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseConfig_Defaults(t *testing.T) {
	config, err := ParseConfig(env(map[string]string{
		"DB_HOST":    "localhost",
		"DB_PORT":    "5432",
		"DB_USER":    "catering",
		"DB_NAME":    "catering",
		"JWT_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, jobs.DefaultOutboxSchedule, config.OutboxSchedule)
	assert.Equal(t, 50, config.OutboxBatchSize)
	assert.Equal(t, 10, config.OutboxMaxAttempts)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Equal(t, "host=localhost port=5432 user=catering password= dbname=catering sslmode=disable", config.DSN())
}

func TestParseConfig_Overrides(t *testing.T) {
	config, err := ParseConfig(env(map[string]string{
		"HTTP_PORT":           "9090",
		"JWT_SECRET":          "secret",
		"OUTBOX_SCHEDULE":     "@every 30s",
		"OUTBOX_BATCH_SIZE":   "5",
		"OUTBOX_MAX_ATTEMPTS": "3",
		"LOG_LEVEL":           "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.Equal(t, jobs.OutboxSettings{Schedule: "@every 30s", BatchSize: 5, MaxAttempts: 3}, config.OutboxSettings())
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		target error
	}{
		{"missing secret", map[string]string{}, errs.ErrValueIsRequired},
		{"batch is not a number", map[string]string{"JWT_SECRET": "s", "OUTBOX_BATCH_SIZE": "many"}, errs.ErrValueIsInvalid},
		{"zero attempts", map[string]string{"JWT_SECRET": "s", "OUTBOX_MAX_ATTEMPTS": "0"}, errs.ErrValueIsOutOfRange},
		{"unknown level", map[string]string{"JWT_SECRET": "s", "LOG_LEVEL": "loud"}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(env(tt.values))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}
