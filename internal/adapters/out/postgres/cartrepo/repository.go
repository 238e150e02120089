package cartrepo

import (
	"context"

	"catering/internal/adapters/out/postgres/pgerrs"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the cart and any lines it already holds.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
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

func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "cart", id.String())
	}
	return toDomain(dto)
}

func (r *GormCartRepository) GetByEventAndCustomer(ctx context.Context, eventID, customerID kernel.UUID) (*cart.Cart, error) {
	if err := eventID.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.withItems(ctx).
		First(&dto, "event_id = ? AND customer_id = ?", eventID.Raw(), customerID.Raw()).Error
	if err != nil {
		return nil, pgerrs.NotFound(err, "cart", eventID.String()+"/"+customerID.String())
	}
	return toDomain(dto)
}

func (r *GormCartRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*cart.Cart, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	owner := r.db.WithContext(ctx).Model(&CartItemDTO{}).Select("cart_id").Where("id = ?", itemID.Raw())
	var dto CartDTO
	if err := r.withItems(ctx).First(&dto, "id = (?)", owner).Error; err != nil {
		return nil, pgerrs.NotFound(err, "cartItem", itemID.String())
	}
	return toDomain(dto)
}

func (r *GormCartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// UpdateItem writes only the quantity; concurrent updates are last-write-wins.
func (r *GormCartRepository) UpdateItem(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("id = ?", item.ID().Raw()).
		Update("quantity", item.Quantity())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartItem", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormCartRepository) RemoveItem(ctx context.Context, itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", itemID.Raw()).Error
}

func (r *GormCartRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at, id")
	})
}
