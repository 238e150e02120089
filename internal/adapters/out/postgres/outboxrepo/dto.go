// Package outboxrepo persists outbox messages.
package outboxrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO is the outbox_messages row. (kind, aggregate_id) is unique.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_outbox_kind_aggregate"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_outbox_kind_aggregate"`
	Attempts    int        `gorm:"type:int;not null;default:0"`
	LastError   string     `gorm:"type:varchar(1000)"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	ProcessedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Raw(),
		Kind:        string(m.Kind()),
		AggregateID: m.AggregateID().Raw(),
		Attempts:    m.Attempts(),
		LastError:   m.LastError(),
		CreatedAt:   m.CreatedAt(),
		ProcessedAt: m.ProcessedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}
	return outbox.RestoreMessage(id, outbox.Kind(dto.Kind), aggregateID, dto.Attempts, dto.LastError, dto.CreatedAt, dto.ProcessedAt)
}
