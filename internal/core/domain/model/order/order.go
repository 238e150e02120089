package order

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder, RestoreOrder or DeriveBackupOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoBackupProvider is returned by DeriveBackupOrder for an order
	// placed without a backup provider.
	ErrNoBackupProvider = errors.New("order has no backup provider")
)

// Order is a customer's request to a primary provider for the lines of one
// cart, with an optional backup provider that takes over on decline.
//
// Order follows these invariants:
//   - TotalPrimary is the sum of price × quantity over non-backup lines
//   - TotalBackup is the sum over backup lines
//   - Status only moves from Pending to a terminal status
//   - SourceOrderID is set only on orders derived from a declined order
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id                  kernel.UUID
	eventID             kernel.UUID
	cartID              kernel.UUID
	customerID          kernel.UUID
	primaryProviderID   kernel.UUID
	backupProviderID    *kernel.UUID
	sourceOrderID       *kernel.UUID
	lines               []LineItem
	totalPrimary        kernel.Money
	totalBackup         kernel.Money
	totalAmount         kernel.Money
	status              Status
	specialInstructions string
	createdAt           time.Time
	updatedAt           time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a pending order from snapshot lines. Totals are computed
// from the lines; the amount charged is the primary total.
//
// Parameters:
//   - eventID, cartID, customerID: owners of the order (must be valid UUIDs)
//   - primaryProviderID: provider asked to fulfil the order
//   - backupProviderID: optional provider that takes over on decline
//   - lines: snapshot of the cart, at least one line
//   - specialInstructions: free text, may be empty
//
// Example:
//
//	line, _ := order.LineFromCartItem(cartItem)
//	o, err := order.NewOrder(eventID, cartID, customerID, primaryID, &backupID, []order.LineItem{line}, "")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	eventID, cartID, customerID, primaryProviderID kernel.UUID,
	backupProviderID *kernel.UUID,
	lines []LineItem,
	specialInstructions string,
) (*Order, error) {
	now := time.Now().UTC()
	primary, backup := computeTotals(lines)

	return RestoreOrder(Snapshot{
		ID:                  kernel.NewUUID(),
		EventID:             eventID,
		CartID:              cartID,
		CustomerID:          customerID,
		PrimaryProviderID:   primaryProviderID,
		BackupProviderID:    backupProviderID,
		Lines:               lines,
		TotalPrimary:        primary,
		TotalBackup:         backup,
		TotalAmount:         primary,
		Status:              Pending,
		SpecialInstructions: specialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

// Snapshot carries the persisted state of an order into RestoreOrder.
type Snapshot struct {
	ID                  kernel.UUID
	EventID             kernel.UUID
	CartID              kernel.UUID
	CustomerID          kernel.UUID
	PrimaryProviderID   kernel.UUID
	BackupProviderID    *kernel.UUID
	SourceOrderID       *kernel.UUID
	Lines               []LineItem
	TotalPrimary        kernel.Money
	TotalBackup         kernel.Money
	TotalAmount         kernel.Money
	Status              Status
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RestoreOrder rebuilds an order from storage. Stored totals are kept as-is;
// status and identifiers are validated.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		totalPrimary:        s.TotalPrimary,
		totalBackup:         s.TotalBackup,
		totalAmount:         s.TotalAmount,
		specialInstructions: s.SpecialInstructions,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setOwners(s.EventID, s.CartID, s.CustomerID),
		o.setProviders(s.PrimaryProviderID, s.BackupProviderID),
		o.setSourceOrder(s.SourceOrderID),
		o.setLines(s.Lines),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// EventID returns the event the order is placed for.
func (o *Order) EventID() kernel.UUID {
	return o.eventID
}

// CartID returns the cart the lines were copied from.
func (o *Order) CartID() kernel.UUID {
	return o.cartID
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PrimaryProviderID returns the provider asked to fulfil the order.
func (o *Order) PrimaryProviderID() kernel.UUID {
	return o.primaryProviderID
}

// BackupProviderID returns the fallback provider, nil when none was chosen.
func (o *Order) BackupProviderID() *kernel.UUID {
	return o.backupProviderID
}

// SourceOrderID returns the declined order this one was derived from.
// Returns nil for orders placed by a customer.
func (o *Order) SourceOrderID() *kernel.UUID {
	return o.sourceOrderID
}

// Lines returns a copy of the snapshot lines.
func (o *Order) Lines() []LineItem {
	out := make([]LineItem, len(o.lines))
	copy(out, o.lines)
	return out
}

// TotalPrimary returns the sum over primary lines.
func (o *Order) TotalPrimary() kernel.Money {
	return o.totalPrimary
}

// TotalBackup returns the sum over backup lines.
func (o *Order) TotalBackup() kernel.Money {
	return o.totalBackup
}

// TotalAmount returns the amount charged to the primary provider.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SpecialInstructions returns the customer's notes, empty when none.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasBackup reports whether a backup provider was chosen.
func (o *Order) HasBackup() bool {
	return o.backupProviderID != nil
}

// IsPlacedBy reports whether customerID owns the order.
func (o *Order) IsPlacedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Involves reports whether providerID is the primary or the backup provider.
func (o *Order) Involves(providerID kernel.UUID) bool {
	if o.primaryProviderID.IsEqual(providerID) {
		return true
	}
	return o.backupProviderID != nil && o.backupProviderID.IsEqual(providerID)
}

// Decide applies a provider decision.
//
// This method enforces the following business rules:
//   - the target must be Confirmed or Declined
//   - the order must be Pending
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError for a target that is not a decision
//   - an error wrapping ErrStatusTransitionNotAllowed for a terminal order
func (o *Order) Decide(target Status) error {
	if !target.IsDecision() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a provider decision", target),
		)
	}

	next, err := o.status.transitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel withdraws a pending order.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// NeedsBackup reports whether a declined order should spawn a backup order.
func (o *Order) NeedsBackup() bool {
	return o.status == Declined && o.backupProviderID != nil
}

// DeriveBackupOrder builds the pending order sent to the backup provider
// after a decline.
//
// The derived order:
//   - has the backup provider as primary and no backup of its own
//   - carries the backup lines, re-flagged as primary lines
//   - charges the original TotalBackup
//   - points back to this order through SourceOrderID
//
// Returns ErrNoBackupProvider when no backup was chosen and an error
// wrapping ErrStatusTransitionNotAllowed when the order is not declined.
func (o *Order) DeriveBackupOrder() (*Order, error) {
	if o.backupProviderID == nil {
		return nil, ErrNoBackupProvider
	}
	if o.status != Declined {
		return nil, fmt.Errorf("%w: backup requires declined order, got %s", ErrStatusTransitionNotAllowed, o.status)
	}

	lines := make([]LineItem, 0, len(o.lines))
	for _, l := range o.lines {
		if l.isBackupProvider {
			lines = append(lines, l.asPrimary())
		}
	}

	sourceID := o.id
	now := time.Now().UTC()
	return RestoreOrder(Snapshot{
		ID:                  kernel.NewUUID(),
		EventID:             o.eventID,
		CartID:              o.cartID,
		CustomerID:          o.customerID,
		PrimaryProviderID:   *o.backupProviderID,
		SourceOrderID:       &sourceID,
		Lines:               lines,
		TotalPrimary:        o.totalBackup,
		TotalBackup:         kernel.ZeroMoney(),
		TotalAmount:         o.totalBackup,
		Status:              Pending,
		SpecialInstructions: o.specialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwners(eventID, cartID, customerID kernel.UUID) error {
	if err := errors.Join(eventID.Validate(), cartID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	o.eventID, o.cartID, o.customerID = eventID, cartID, customerID
	return nil
}

// setProviders rejects a backup equal to the primary provider.
func (o *Order) setProviders(primary kernel.UUID, backup *kernel.UUID) error {
	if err := primary.Validate(); err != nil {
		return err
	}
	if backup != nil {
		if err := backup.Validate(); err != nil {
			return err
		}
		if backup.IsEqual(primary) {
			return errs.NewValueIsInvalidErrorWithCause(
				"backup provider is invalid",
				fmt.Errorf("%s is already the primary provider", backup),
			)
		}
		id := *backup
		o.backupProviderID = &id
	}
	o.primaryProviderID = primary
	return nil
}

func (o *Order) setSourceOrder(source *kernel.UUID) error {
	if source == nil {
		return nil
	}
	if err := source.Validate(); err != nil {
		return err
	}
	id := *source
	o.sourceOrderID = &id
	return nil
}

// setLines requires at least one line, except on derived orders whose
// source had a backup provider but no backup lines.
func (o *Order) setLines(lines []LineItem) error {
	if len(lines) == 0 && o.sourceOrderID == nil {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = make([]LineItem, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
