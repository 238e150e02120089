// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are stored with a snapshot of their lines in order_items.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders row.
//
// ProviderID mirrors PrimaryProviderID and OrderStatus mirrors Status; both
// are kept for readers of the older column names. SourceOrderID is unique so
// that a declined order has at most one derived backup order.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EventID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	CartID              uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProviderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	PrimaryProviderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BackupProviderID    *uuid.UUID      `gorm:"type:uuid;index"`
	SourceOrderID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPricePrimary   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPriceBackup    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status              string          `gorm:"type:varchar(16);not null;index"`
	OrderStatus         string          `gorm:"type:varchar(16);not null"`
	SpecialInstructions string          `gorm:"type:text"`
	CreatedAt           time.Time       `gorm:"not null;index"`
	UpdatedAt           time.Time       `gorm:"not null"`
	Items               []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one snapshot line of an order.
type OrderItemDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"type:int;not null"`
	FoodItemID       uuid.UUID       `gorm:"type:uuid;not null"`
	TraySize         string          `gorm:"type:varchar(16);not null"`
	Quantity         int             `gorm:"type:int;not null"`
	ProviderID       uuid.UUID       `gorm:"type:uuid;not null"`
	IsBackupProvider bool            `gorm:"not null;default:false"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate and its lines to rows.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Raw()
	lines := o.Lines()
	items := make([]OrderItemDTO, 0, len(lines))
	for i, l := range lines {
		items = append(items, OrderItemDTO{
			ID:               l.ID().Raw(),
			OrderID:          orderID,
			Position:         i,
			FoodItemID:       l.FoodItemID().Raw(),
			TraySize:         l.TraySize().String(),
			Quantity:         l.Quantity(),
			ProviderID:       l.ProviderID().Raw(),
			IsBackupProvider: l.IsBackupProvider(),
			UnitPrice:        l.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		EventID:             o.EventID().Raw(),
		CartID:              o.CartID().Raw(),
		CustomerID:          o.CustomerID().Raw(),
		ProviderID:          o.PrimaryProviderID().Raw(),
		PrimaryProviderID:   o.PrimaryProviderID().Raw(),
		BackupProviderID:    kernel.OptionalBytes(o.BackupProviderID()),
		SourceOrderID:       kernel.OptionalBytes(o.SourceOrderID()),
		TotalAmount:         o.TotalAmount().Decimal(),
		TotalPricePrimary:   o.TotalPrimary().Decimal(),
		TotalPriceBackup:    o.TotalBackup().Decimal(),
		Status:              o.Status().String(),
		OrderStatus:         o.Status().String(),
		SpecialInstructions: o.SpecialInstructions(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		Items:               items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Lines must be ordered
// by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var (
		s   order.Snapshot
		err error
	)
	if s.ID, err = kernel.UUIDFromBytes(dto.ID[:]); err != nil {
		return nil, err
	}
	if s.EventID, err = kernel.UUIDFromBytes(dto.EventID[:]); err != nil {
		return nil, err
	}
	if s.CartID, err = kernel.UUIDFromBytes(dto.CartID[:]); err != nil {
		return nil, err
	}
	if s.CustomerID, err = kernel.UUIDFromBytes(dto.CustomerID[:]); err != nil {
		return nil, err
	}
	if s.PrimaryProviderID, err = kernel.UUIDFromBytes(dto.PrimaryProviderID[:]); err != nil {
		return nil, err
	}
	if s.BackupProviderID, err = kernel.OptionalUUIDFromBytes(dto.BackupProviderID); err != nil {
		return nil, err
	}
	if s.SourceOrderID, err = kernel.OptionalUUIDFromBytes(dto.SourceOrderID); err != nil {
		return nil, err
	}
	if s.TotalPrimary, err = kernel.NewMoney(dto.TotalPricePrimary); err != nil {
		return nil, err
	}
	if s.TotalBackup, err = kernel.NewMoney(dto.TotalPriceBackup); err != nil {
		return nil, err
	}
	if s.TotalAmount, err = kernel.NewMoney(dto.TotalAmount); err != nil {
		return nil, err
	}
	if s.Status, err = order.ParseStatus(dto.Status); err != nil {
		return nil, err
	}

	s.Lines = make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, err := lineToDomain(item)
		if err != nil {
			return nil, err
		}
		s.Lines = append(s.Lines, line)
	}

	s.SpecialInstructions = dto.SpecialInstructions
	s.CreatedAt = dto.CreatedAt
	s.UpdatedAt = dto.UpdatedAt
	return order.RestoreOrder(s)
}

func lineToDomain(dto OrderItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	traySize, err := cart.ParseTraySize(dto.TraySize)
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(id, foodItemID, traySize, dto.Quantity, providerID, unitPrice, dto.IsBackupProvider)
}
