package catalogrepo

import (
	"context"

	"catering/internal/adapters/out/postgres/pgerrs"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ProviderRepository using GORM.
type GormProviderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProviderRepository(db *gorm.DB, tracker aggregateTracker) *GormProviderRepository {
	return &GormProviderRepository{db: db, tracker: tracker}
}

// Add yields ports.ErrAlreadyExists when the user already owns a provider.
func (r *GormProviderRepository) Add(ctx context.Context, provider *catalog.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	dto := providerFromDomain(provider)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackAggregate(provider.ID(), provider)
	return nil
}

func (r *GormProviderRepository) Update(ctx context.Context, provider *catalog.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	dto := providerFromDomain(provider)
	result := r.db.WithContext(ctx).
		Model(&ProviderDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "location", "provider_type", "phone", "email", "is_active", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("provider", provider.ID().String())
	}

	r.tracker.TrackAggregate(provider.ID(), provider)
	return nil
}

func (r *GormProviderRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Provider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "provider", id.String())
	}
	return providerToDomain(dto)
}

func (r *GormProviderRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.Provider, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "provider", "of user "+userID.String())
	}
	return providerToDomain(dto)
}

// GormFoodItemRepository implements FoodItemRepository using GORM.
type GormFoodItemRepository struct {
	db *gorm.DB
}

func NewGormFoodItemRepository(db *gorm.DB) *GormFoodItemRepository {
	return &GormFoodItemRepository{db: db}
}

func (r *GormFoodItemRepository) Add(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := foodItemFromDomain(item)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "foodItem", id.String())
	}
	return foodItemToDomain(dto)
}

// Update writes every mutable column of the dish.
func (r *GormFoodItemRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := foodItemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "cuisine_type", "price_per_tray", "tray_size",
			"is_vegetarian", "is_vegan", "is_available", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("foodItem", item.ID().String())
	}
	return nil
}

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Add(ctx context.Context, menu *catalog.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(menu)
	return pgerrs.Translate(r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "menu", id.String())
	}
	return menuToDomain(dto)
}
