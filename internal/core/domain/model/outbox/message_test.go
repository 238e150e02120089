package outbox_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/outbox"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	orderID := kernel.NewUUID()

	m, err := outbox.NewMessage(outbox.BackupOrderRequested, orderID)

	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, outbox.BackupOrderRequested, m.Kind())
	assert.True(t, m.AggregateID().IsEqual(orderID))
	assert.Zero(t, m.Attempts())
	assert.False(t, m.IsProcessed())
	assert.True(t, m.CanRetry(1))
}

func TestNewMessage_Invalid(t *testing.T) {
	_, err := outbox.NewMessage(outbox.Kind("ship_it"), kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreMessage_NegativeAttempts(t *testing.T) {
	_, err := outbox.RestoreMessage(kernel.NewUUID(), outbox.BackupOrderRequested, kernel.NewUUID(), -1, "", time.Now(), nil)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMessage_RecordFailure(t *testing.T) {
	m, err := outbox.NewMessage(outbox.BackupOrderRequested, kernel.NewUUID())
	require.NoError(t, err)

	m.RecordFailure(errors.New("connection reset"))
	m.RecordFailure(errors.New(strings.Repeat("x", 5000)))

	assert.Equal(t, 2, m.Attempts())
	assert.Len(t, m.LastError(), 1000)
	assert.True(t, m.CanRetry(3))
	assert.False(t, m.CanRetry(2))
}

func TestMessage_MarkProcessed(t *testing.T) {
	m, err := outbox.NewMessage(outbox.BackupOrderRequested, kernel.NewUUID())
	require.NoError(t, err)
	m.RecordFailure(errors.New("boom"))

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.MarkProcessed(first)
	m.MarkProcessed(first.Add(time.Hour))

	require.True(t, m.IsProcessed())
	assert.Equal(t, first, *m.ProcessedAt())
	assert.Empty(t, m.LastError())
	assert.False(t, m.CanRetry(10))
}
