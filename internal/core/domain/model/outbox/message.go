// Package outbox holds the intents recorded in the same transaction as a
// state change and carried out afterwards, so that a dependent action can be
// retried without undoing the change that caused it.
package outbox

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned for a Message that did not come from
// NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// Kind names the action an outbox message asks for.
type Kind string

const (
	// BackupOrderRequested asks for the backup order of a declined order.
	// The aggregate id is the declined order.
	BackupOrderRequested Kind = "backup_order_requested"
)

// Validate accepts only declared kinds.
func (k Kind) Validate() error {
	if k != BackupOrderRequested {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a known kind", string(k)))
	}
	return nil
}

// maxErrorLength bounds the stored failure text.
const maxErrorLength = 1000

// Message is one pending intent. A message is processed at most once:
// (kind, aggregate id) is unique in storage.
type Message struct {
	id          kernel.UUID
	kind        Kind
	aggregateID kernel.UUID
	attempts    int
	lastError   string
	createdAt   time.Time
	processedAt *time.Time

	isConstructed bool
}

// NewMessage creates an unprocessed message.
func NewMessage(kind Kind, aggregateID kernel.UUID) (*Message, error) {
	return RestoreMessage(kernel.NewUUID(), kind, aggregateID, 0, "", time.Now().UTC(), nil)
}

// RestoreMessage rebuilds a stored message.
func RestoreMessage(
	id kernel.UUID,
	kind Kind,
	aggregateID kernel.UUID,
	attempts int,
	lastError string,
	createdAt time.Time,
	processedAt *time.Time,
) (*Message, error) {
	var attemptsErr error
	if attempts < 0 {
		attemptsErr = errs.NewValueIsOutOfRangeError("attempts", attempts, 0, "unbounded")
	}
	if err := errors.Join(id.Validate(), kind.Validate(), aggregateID.Validate(), attemptsErr); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		kind:          kind,
		aggregateID:   aggregateID,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		processedAt:   processedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the message was built through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Kind() Kind {
	return m.kind
}

func (m *Message) AggregateID() kernel.UUID {
	return m.aggregateID
}

func (m *Message) Attempts() int {
	return m.attempts
}

func (m *Message) LastError() string {
	return m.lastError
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) ProcessedAt() *time.Time {
	return m.processedAt
}

// IsProcessed reports whether the intent was carried out.
func (m *Message) IsProcessed() bool {
	return m.processedAt != nil
}

// MarkProcessed records completion. Marking twice keeps the first time.
func (m *Message) MarkProcessed(at time.Time) {
	if m.processedAt != nil {
		return
	}
	at = at.UTC()
	m.processedAt = &at
	m.lastError = ""
}

// RecordFailure counts an attempt and keeps the failure text.
func (m *Message) RecordFailure(cause error) {
	m.attempts++
	if cause == nil {
		return
	}
	text := cause.Error()
	if len(text) > maxErrorLength {
		text = text[:maxErrorLength]
	}
	m.lastError = text
}

// CanRetry reports whether the message is still eligible for processing.
func (m *Message) CanRetry(maxAttempts int) bool {
	return !m.IsProcessed() && m.attempts < maxAttempts
}
