// Package catalogrepo persists providers, the food items they sell, their
// menus and the reviews customers leave them.
package catalogrepo

import (
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProviderDTO is the providers row. A user owns at most one provider.
type ProviderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	Location     string    `gorm:"type:varchar(255);not null"`
	ProviderType string    `gorm:"type:varchar(32);not null;index"`
	Phone        string    `gorm:"type:varchar(64)"`
	Email        string    `gorm:"type:varchar(255)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (ProviderDTO) TableName() string {
	return "providers"
}

// FoodItemDTO is the food_items row.
type FoodItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProviderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Description  string          `gorm:"type:text"`
	CuisineType  string          `gorm:"type:varchar(64)"`
	PricePerTray decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TraySize     string          `gorm:"type:varchar(16);not null"`
	IsVegetarian bool            `gorm:"not null;default:false"`
	IsVegan      bool            `gorm:"not null;default:false"`
	IsAvailable  bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

func (FoodItemDTO) TableName() string {
	return "food_items"
}

// MenuDTO is the menus row.
type MenuDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// ReviewDTO is the reviews row. Reviews are written outside this service
// and only read here.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	Rating     int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func providerFromDomain(p *catalog.Provider) ProviderDTO {
	contact := p.Contact()
	return ProviderDTO{
		ID:           p.ID().Raw(),
		UserID:       p.UserID().Raw(),
		Name:         p.Name(),
		Description:  p.Description(),
		Location:     p.Location(),
		ProviderType: p.Type().String(),
		Phone:        contact.Phone,
		Email:        contact.Email,
		IsActive:     p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func providerToDomain(dto ProviderDTO) (*catalog.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	providerType, err := catalog.ParseProviderType(dto.ProviderType)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProvider(
		id, userID, dto.Name, dto.Description, dto.Location, providerType,
		catalog.Contact{Phone: dto.Phone, Email: dto.Email},
		dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}

func foodItemFromDomain(f *catalog.FoodItem) FoodItemDTO {
	dietary := f.Dietary()
	return FoodItemDTO{
		ID:           f.ID().Raw(),
		ProviderID:   f.ProviderID().Raw(),
		Name:         f.Name(),
		Description:  f.Description(),
		CuisineType:  f.CuisineType(),
		PricePerTray: f.PricePerTray().Decimal(),
		TraySize:     f.TraySize().String(),
		IsVegetarian: dietary.Vegetarian,
		IsVegan:      dietary.Vegan,
		IsAvailable:  f.IsAvailable(),
		CreatedAt:    f.CreatedAt(),
		UpdatedAt:    f.UpdatedAt(),
	}
}

func foodItemToDomain(dto FoodItemDTO) (*catalog.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.PricePerTray)
	if err != nil {
		return nil, err
	}
	traySize, err := cart.ParseTraySize(dto.TraySize)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreFoodItem(
		id, providerID, dto.Name, dto.Description, dto.CuisineType, price, traySize,
		catalog.Dietary{Vegetarian: dto.IsVegetarian, Vegan: dto.IsVegan},
		dto.IsAvailable, dto.CreatedAt, dto.UpdatedAt,
	)
}

func menuFromDomain(m *catalog.Menu) MenuDTO {
	return MenuDTO{
		ID:          m.ID().Raw(),
		ProviderID:  m.ProviderID().Raw(),
		Title:       m.Title(),
		Description: m.Description(),
		CreatedAt:   m.CreatedAt(),
	}
}

func menuToDomain(dto MenuDTO) (*catalog.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenu(id, providerID, dto.Title, dto.Description, dto.CreatedAt)
}
