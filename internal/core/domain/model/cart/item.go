package cart

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item did not come from NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one cart line: a food item in a tray size and quantity, priced for
// a provider. Backup lines price the same dish at the backup provider.
type Item struct {
	id               kernel.UUID
	cartID           kernel.UUID
	foodItemID       kernel.UUID
	traySize         TraySize
	quantity         int
	providerID       kernel.UUID
	isBackupProvider bool
	unitPrice        kernel.Money
	createdAt        time.Time

	isConstructed bool
}

// NewItem creates a line with a fresh identifier.
// Quantity must be at least 1.
func NewItem(
	cartID, foodItemID kernel.UUID,
	traySize TraySize,
	quantity int,
	providerID kernel.UUID,
	unitPrice kernel.Money,
	isBackupProvider bool,
) (*Item, error) {
	return RestoreItem(
		kernel.NewUUID(), cartID, foodItemID, traySize, quantity,
		providerID, unitPrice, isBackupProvider, time.Now().UTC(),
	)
}

// RestoreItem rebuilds a persisted line. The same rules as NewItem apply.
func RestoreItem(
	id, cartID, foodItemID kernel.UUID,
	traySize TraySize,
	quantity int,
	providerID kernel.UUID,
	unitPrice kernel.Money,
	isBackupProvider bool,
	createdAt time.Time,
) (*Item, error) {
	item := &Item{
		unitPrice:        unitPrice,
		isBackupProvider: isBackupProvider,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		setUUID(&item.id, id),
		setUUID(&item.cartID, cartID),
		setUUID(&item.foodItemID, foodItemID),
		setUUID(&item.providerID, providerID),
		item.setTraySize(traySize),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) CartID() kernel.UUID { return i.cartID }
func (i *Item) FoodItemID() kernel.UUID { return i.foodItemID }
func (i *Item) TraySize() TraySize { return i.traySize }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) ProviderID() kernel.UUID { return i.providerID }
func (i *Item) IsBackupProvider() bool { return i.isBackupProvider }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) Subtotal() kernel.Money { return i.unitPrice.Times(i.quantity) }

func (i *Item) setTraySize(traySize TraySize) error {
	if err := traySize.Validate(); err != nil {
		return err
	}
	i.traySize = traySize
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
