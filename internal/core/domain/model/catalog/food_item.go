package catalog

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"
)

var ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem or RestoreFoodItem")

// Dietary flags a dish.
type Dietary struct {
	Vegetarian bool
	Vegan      bool
}

// FoodItem is a dish a provider sells by the tray.
type FoodItem struct {
	id           kernel.UUID
	providerID   kernel.UUID
	name         string
	description  string
	cuisineType  string
	pricePerTray kernel.Money
	traySize     cart.TraySize
	dietary      Dietary
	isAvailable  bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewFoodItem creates an available dish. A vegan dish is vegetarian as well.
func NewFoodItem(
	providerID kernel.UUID,
	name, description, cuisineType string,
	pricePerTray kernel.Money,
	traySize cart.TraySize,
	dietary Dietary,
) (*FoodItem, error) {
	now := time.Now().UTC()
	return RestoreFoodItem(kernel.NewUUID(), providerID, name, description, cuisineType,
		pricePerTray, traySize, dietary, true, now, now)
}

// RestoreFoodItem rebuilds a stored dish.
func RestoreFoodItem(
	id, providerID kernel.UUID,
	name, description, cuisineType string,
	pricePerTray kernel.Money,
	traySize cart.TraySize,
	dietary Dietary,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) (*FoodItem, error) {
	if err := errors.Join(
		id.Validate(),
		providerID.Validate(),
		requireText("name", name),
		requireText("cuisineType", cuisineType),
		traySize.Validate(),
	); err != nil {
		return nil, err
	}

	if dietary.Vegan {
		dietary.Vegetarian = true
	}

	return &FoodItem{
		id:            id,
		providerID:    providerID,
		name:          strings.TrimSpace(name),
		description:   description,
		cuisineType:   strings.TrimSpace(cuisineType),
		pricePerTray:  pricePerTray,
		traySize:      traySize,
		dietary:       dietary,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (f *FoodItem) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodItemIsNotConstructed
	}
	return nil
}

func (f *FoodItem) ID() kernel.UUID { return f.id }
func (f *FoodItem) ProviderID() kernel.UUID { return f.providerID }
func (f *FoodItem) Name() string { return f.name }
func (f *FoodItem) Description() string { return f.description }
func (f *FoodItem) CuisineType() string { return f.cuisineType }
func (f *FoodItem) PricePerTray() kernel.Money { return f.pricePerTray }
func (f *FoodItem) TraySize() cart.TraySize { return f.traySize }
func (f *FoodItem) Dietary() Dietary { return f.dietary }
func (f *FoodItem) IsAvailable() bool { return f.isAvailable }
func (f *FoodItem) CreatedAt() time.Time { return f.createdAt }
func (f *FoodItem) UpdatedAt() time.Time { return f.updatedAt }

// FoodItemChanges lists the fields of a partial update. Nil fields are kept.
type FoodItemChanges struct {
	Name         *string
	Description  *string
	CuisineType  *string
	PricePerTray *kernel.Money
	TraySize     *cart.TraySize
	Vegetarian   *bool
	Vegan        *bool
	IsAvailable  *bool
}

// IsEmpty reports whether the update touches no field.
func (c FoodItemChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.CuisineType == nil && c.PricePerTray == nil &&
		c.TraySize == nil && c.Vegetarian == nil && c.Vegan == nil && c.IsAvailable == nil
}

// Update applies changes. The dish is left untouched when any field is
// invalid. A vegan dish stays vegetarian.
func (f *FoodItem) Update(changes FoodItemChanges) error {
	next := *f
	if changes.Name != nil {
		next.name = *changes.Name
	}
	if changes.Description != nil {
		next.description = *changes.Description
	}
	if changes.CuisineType != nil {
		next.cuisineType = *changes.CuisineType
	}
	if changes.PricePerTray != nil {
		next.pricePerTray = *changes.PricePerTray
	}
	if changes.TraySize != nil {
		next.traySize = *changes.TraySize
	}
	if changes.Vegetarian != nil {
		next.dietary.Vegetarian = *changes.Vegetarian
	}
	if changes.Vegan != nil {
		next.dietary.Vegan = *changes.Vegan
	}
	if changes.IsAvailable != nil {
		next.isAvailable = *changes.IsAvailable
	}

	updated, err := RestoreFoodItem(next.id, next.providerID, next.name, next.description, next.cuisineType,
		next.pricePerTray, next.traySize, next.dietary, next.isAvailable, next.createdAt, time.Now().UTC())
	if err != nil {
		return err
	}
	*f = *updated
	return nil
}
