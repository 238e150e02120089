// Package cartrepo persists carts and their lines.
package cartrepo

import (
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO is the carts row. One cart exists per (event, customer).
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	EventID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_carts_event_customer"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_carts_event_customer"`
	CreatedAt  time.Time     `gorm:"not null"`
	Items      []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO is the cart_items row.
type CartItemDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodItemID       uuid.UUID       `gorm:"type:uuid;not null"`
	TraySize         string          `gorm:"type:varchar(16);not null"`
	Quantity         int             `gorm:"type:int;not null"`
	ProviderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	IsBackupProvider bool            `gorm:"not null;default:false"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(c *cart.Cart) CartDTO {
	items := c.Items()
	dtos := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromDomain(item))
	}

	return CartDTO{
		ID:         c.ID().Raw(),
		EventID:    c.EventID().Raw(),
		CustomerID: c.CustomerID().Raw(),
		CreatedAt:  c.CreatedAt(),
		Items:      dtos,
	}
}

func itemFromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:               item.ID().Raw(),
		CartID:           item.CartID().Raw(),
		FoodItemID:       item.FoodItemID().Raw(),
		TraySize:         item.TraySize().String(),
		Quantity:         item.Quantity(),
		ProviderID:       item.ProviderID().Raw(),
		IsBackupProvider: item.IsBackupProvider(),
		UnitPrice:        item.UnitPrice().Decimal(),
		CreatedAt:        item.CreatedAt(),
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, eventID, customerID, dto.CreatedAt, items)
}

func itemToDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cartID, err := kernel.UUIDFromBytes(dto.CartID[:])
	if err != nil {
		return nil, err
	}
	foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}
	traySize, err := cart.ParseTraySize(dto.TraySize)
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(id, cartID, foodItemID, traySize, dto.Quantity, providerID, unitPrice, dto.IsBackupProvider, dto.CreatedAt)
}
