package queries

import (
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

func toMoney(amount decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(amount)
}

func restoreCartItem(
	c CartView,
	id, foodItemID, providerID uuid.UUID,
	traySize string,
	quantity int,
	unitPrice decimal.Decimal,
	isBackup bool,
	createdAt time.Time,
) (*cart.Item, error) {
	itemID, err := toUUID(id)
	if err != nil {
		return nil, err
	}
	foodID, err := toUUID(foodItemID)
	if err != nil {
		return nil, err
	}
	ownerID, err := toUUID(providerID)
	if err != nil {
		return nil, err
	}
	size, err := cart.ParseTraySize(traySize)
	if err != nil {
		return nil, err
	}
	price, err := toMoney(unitPrice)
	if err != nil {
		return nil, err
	}
	return cart.RestoreItem(itemID, c.ID, foodID, size, quantity, ownerID, price, isBackup, createdAt)
}
