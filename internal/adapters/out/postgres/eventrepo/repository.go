package eventrepo

import (
	"context"

	"catering/internal/adapters/out/postgres/pgerrs"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Add(ctx context.Context, e *event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := fromDomain(e)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormEventRepository) Get(ctx context.Context, id kernel.UUID) (*event.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "event", id.String())
	}
	return toDomain(dto)
}
