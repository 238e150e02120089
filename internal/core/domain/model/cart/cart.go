package cart

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart did not come from NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Totals splits a cart's value by provider role.
type Totals struct {
	// Primary is the sum over lines that are not backup lines.
	Primary kernel.Money
	// Backup is the sum over backup lines.
	Backup kernel.Money
}

// Sum returns Primary + Backup, the value of every line in the cart.
func (t Totals) Sum() kernel.Money {
	return t.Primary.Add(t.Backup)
}

// ComputeTotals is a pure function of the given lines.
func ComputeTotals(items []*Item) Totals {
	totals := Totals{Primary: kernel.ZeroMoney(), Backup: kernel.ZeroMoney()}
	for _, item := range items {
		if item.IsBackupProvider() {
			totals.Backup = totals.Backup.Add(item.Subtotal())
			continue
		}
		totals.Primary = totals.Primary.Add(item.Subtotal())
	}
	return totals
}

// Cart is the aggregate holding the lines one customer is planning for one
// event. There is exactly one cart per (event, customer) pair.
//
// Lines are kept in insertion order. Quantity updates are last-write-wins;
// the cart does not merge duplicate lines.
type Cart struct {
	id         kernel.UUID
	eventID    kernel.UUID
	customerID kernel.UUID
	createdAt  time.Time
	items      []*Item

	isConstructed bool
}

// NewCart creates an empty cart for the pair.
func NewCart(eventID, customerID kernel.UUID) (*Cart, error) {
	return RestoreCart(kernel.NewUUID(), eventID, customerID, time.Now().UTC(), nil)
}

// RestoreCart rebuilds a persisted cart with its lines.
func RestoreCart(id, eventID, customerID kernel.UUID, createdAt time.Time, items []*Item) (*Cart, error) {
	c := &Cart{
		createdAt:     createdAt,
		items:         make([]*Item, 0, len(items)),
		isConstructed: true,
	}

	if err := errors.Join(
		setUUID(&c.id, id),
		setUUID(&c.eventID, eventID),
		setUUID(&c.customerID, customerID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.CartID().IsEqual(c.id) {
			return nil, errs.NewValueIsInvalidError("item belongs to another cart")
		}
		c.items = append(c.items, item)
	}

	return c, nil
}

// Validate ensures the cart was built through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// EventID returns the event the cart is planned for.
func (c *Cart) EventID() kernel.UUID {
	return c.eventID
}

// CustomerID returns the owner of the cart.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// CreatedAt returns when the cart was first fetched.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsOwnedBy reports whether userID owns the cart.
func (c *Cart) IsOwnedBy(userID kernel.UUID) bool {
	return c.customerID.IsEqual(userID)
}

// Item looks up a line by identifier.
func (c *Cart) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range c.items {
		if item.ID().IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// AddItem appends a new line and returns it.
func (c *Cart) AddItem(
	foodItemID kernel.UUID,
	traySize TraySize,
	quantity int,
	providerID kernel.UUID,
	unitPrice kernel.Money,
	isBackupProvider bool,
) (*Item, error) {
	item, err := NewItem(c.id, foodItemID, traySize, quantity, providerID, unitPrice, isBackupProvider)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// RemoveItem drops a line. Removing an unknown line is a no-op; the return
// value reports whether anything was removed.
func (c *Cart) RemoveItem(itemID kernel.UUID) bool {
	for idx, item := range c.items {
		if item.ID().IsEqual(itemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line and returns (nil, nil).
func (c *Cart) UpdateQuantity(itemID kernel.UUID, quantity int) (*Item, error) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return nil, nil
	}

	item, ok := c.Item(itemID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("cartItem", itemID.String())
	}
	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}
	return item, nil
}

// Totals returns the primary and backup sums of the current lines.
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.items)
}
