package order

import (
	"errors"
	"fmt"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// LineItem is an immutable copy of a cart line taken when the order is placed.
// It is a value object: later edits to the cart never reach the order.
type LineItem struct {
	id               kernel.UUID
	foodItemID       kernel.UUID
	traySize         cart.TraySize
	quantity         int
	providerID       kernel.UUID
	isBackupProvider bool
	unitPrice        kernel.Money
}

// NewLineItem validates a snapshot line read from storage.
func NewLineItem(
	id, foodItemID kernel.UUID,
	traySize cart.TraySize,
	quantity int,
	providerID kernel.UUID,
	unitPrice kernel.Money,
	isBackupProvider bool,
) (LineItem, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	if err := errors.Join(
		id.Validate(),
		foodItemID.Validate(),
		providerID.Validate(),
		traySize.Validate(),
		quantityErr,
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:               id,
		foodItemID:       foodItemID,
		traySize:         traySize,
		quantity:         quantity,
		providerID:       providerID,
		isBackupProvider: isBackupProvider,
		unitPrice:        unitPrice,
	}, nil
}

// LineFromCartItem snapshots a cart line under a fresh identifier.
func LineFromCartItem(item *cart.Item) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(
		kernel.NewUUID(), item.FoodItemID(), item.TraySize(), item.Quantity(),
		item.ProviderID(), item.UnitPrice(), item.IsBackupProvider(),
	)
}

// ID returns the identifier of the snapshot line, not of the cart line.
func (l LineItem) ID() kernel.UUID { return l.id }

// FoodItemID returns the dish the line was ordered for.
func (l LineItem) FoodItemID() kernel.UUID { return l.foodItemID }

// TraySize returns the tray size of the line.
func (l LineItem) TraySize() cart.TraySize { return l.traySize }

// Quantity returns the number of trays, at least one.
func (l LineItem) Quantity() int { return l.quantity }

// ProviderID returns the provider that cooks the line.
func (l LineItem) ProviderID() kernel.UUID { return l.providerID }

// IsBackupProvider reports whether the line belongs to the backup provider.
func (l LineItem) IsBackupProvider() bool { return l.isBackupProvider }

// UnitPrice returns the price per tray captured when the order was placed.
func (l LineItem) UnitPrice() kernel.Money { return l.unitPrice }

// Subtotal returns UnitPrice times Quantity.
func (l LineItem) Subtotal() kernel.Money { return l.unitPrice.Times(l.quantity) }

// asPrimary returns a copy of a backup line, re-flagged as a primary line
// under a new identifier.
func (l LineItem) asPrimary() LineItem {
	l.id = kernel.NewUUID()
	l.isBackupProvider = false
	return l
}

func computeTotals(lines []LineItem) (primary, backup kernel.Money) {
	primary, backup = kernel.ZeroMoney(), kernel.ZeroMoney()
	for _, l := range lines {
		if l.isBackupProvider {
			backup = backup.Add(l.Subtotal())
			continue
		}
		primary = primary.Add(l.Subtotal())
	}
	return primary, backup
}
