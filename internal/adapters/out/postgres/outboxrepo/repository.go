package outboxrepo

import (
	"context"

	"catering/internal/adapters/out/postgres/pgerrs"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/outbox"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormOutboxRepository) Update(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"attempts":     dto.Attempts,
			"last_error":   dto.LastError,
			"processed_at": dto.ProcessedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", message.ID().String())
	}
	return nil
}

func (r *GormOutboxRepository) GetByAggregate(ctx context.Context, kind outbox.Kind, aggregateID kernel.UUID) (*outbox.Message, error) {
	if err := aggregateID.Validate(); err != nil {
		return nil, err
	}

	var dto MessageDTO
	err := r.db.WithContext(ctx).First(&dto, "kind = ? AND aggregate_id = ?", string(kind), aggregateID.Raw()).Error
	if err != nil {
		return nil, pgerrs.NotFound(err, "outboxMessage", aggregateID.String())
	}
	return toDomain(dto)
}

// ListPending returns unprocessed messages below maxAttempts, oldest first.
func (r *GormOutboxRepository) ListPending(ctx context.Context, kind outbox.Kind, maxAttempts, limit int) ([]*outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("kind = ? AND processed_at IS NULL AND attempts < ?", string(kind), maxAttempts).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
