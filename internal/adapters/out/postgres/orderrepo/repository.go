package orderrepo

import (
	"context"
	"fmt"

	"catering/internal/adapters/out/postgres/pgerrs"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines. A second order derived from the same
// source order yields ports.ErrAlreadyExists.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the status of an existing order. Lines are immutable.
//
// Every transition starts from pending, so the row is only written while it
// is still pending. A row already moved on by a concurrent transaction
// yields an error wrapping order.ErrStatusTransitionNotAllowed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, order.Pending.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"order_status": dto.OrderStatus,
			"updated_at":   dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleUpdate(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) staleUpdate(ctx context.Context, aggregate *order.Order) error {
	var current []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Raw()).
		Pluck("status", &current).Error
	if err != nil {
		return err
	}
	if len(current) == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return fmt.Errorf("%w: order %s is already %s", order.ErrStatusTransitionNotAllowed, aggregate.ID(), current[0])
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "order", id.String())
	}

	return toDomain(dto)
}

// GetBySourceOrder retrieves the backup order derived from sourceID.
func (r *GormOrderRepository) GetBySourceOrder(ctx context.Context, sourceID kernel.UUID) (*order.Order, error) {
	if err := sourceID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "source_order_id = ?", sourceID.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "order", "derived from "+sourceID.String())
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
