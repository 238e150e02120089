package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"catering/internal/adapters/out/postgres"
	"catering/internal/jobs"
	"catering/internal/pkg/errs"
)

const (
	defaultHTTPPort          = "8080"
	defaultOutboxBatchSize   = 50
	defaultOutboxMaxAttempts = 10
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	OutboxSchedule    string
	OutboxBatchSize   int
	OutboxMaxAttempts int
	LogLevel          slog.Level
}

// ParseConfig reads the configuration through getenv, filling defaults for
// optional keys. JWT_SECRET is mandatory.
func ParseConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:       withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:         getenv("DB_HOST"),
		DBPort:         getenv("DB_PORT"),
		DBUser:         getenv("DB_USER"),
		DBPassword:     getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME"),
		DBSslMode:      withDefault(getenv("DB_SSLMODE"), "disable"),
		JWTSecret:      getenv("JWT_SECRET"),
		OutboxSchedule: withDefault(getenv("OUTBOX_SCHEDULE"), jobs.DefaultOutboxSchedule),
	}

	var secretErr error
	if config.JWTSecret == "" {
		secretErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}
	batchSize, batchErr := positiveInt(getenv, "OUTBOX_BATCH_SIZE", defaultOutboxBatchSize)
	maxAttempts, attemptsErr := positiveInt(getenv, "OUTBOX_MAX_ATTEMPTS", defaultOutboxMaxAttempts)
	logLevel, levelErr := parseLogLevel(getenv("LOG_LEVEL"))
	if err := errors.Join(secretErr, batchErr, attemptsErr, levelErr); err != nil {
		return Config{}, err
	}

	config.OutboxBatchSize = batchSize
	config.OutboxMaxAttempts = maxAttempts
	config.LogLevel = logLevel
	return config, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func positiveInt(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if n < 1 {
		return 0, errs.NewValueIsOutOfRangeError(key, n, 1, "unbounded")
	}
	return n, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	if raw == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", fmt.Errorf("%q: %w", raw, err))
	}
	return level, nil
}

// DSN returns the database connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// OutboxSettings returns the schedule of the backup order outbox job.
func (c Config) OutboxSettings() jobs.OutboxSettings {
	return jobs.OutboxSettings{
		Schedule:    c.OutboxSchedule,
		BatchSize:   c.OutboxBatchSize,
		MaxAttempts: c.OutboxMaxAttempts,
	}
}
