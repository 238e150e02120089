// Package ports defines the contracts between the catering domain and its
// infrastructure: repositories, the unit of work and the notification sink.
package ports

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/outbox"
)

// ErrAlreadyExists is returned by Add when a unique key of the aggregate is
// already taken, for example a second backup order for the same source order.
var ErrAlreadyExists = errors.New("aggregate already exists")

// CartRepository defines the persistence contract for carts.
//
// Lines are written one at a time so that concurrent additions to the same
// cart from different sessions do not overwrite each other.
type CartRepository interface {
	// Add persists a new, empty cart. A second cart for the same
	// (event, customer) pair yields ErrAlreadyExists.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart with its lines.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByEventAndCustomer retrieves the cart of a customer for an event.
	// Returns ObjectNotFoundError when the customer has no cart yet.
	GetByEventAndCustomer(ctx context.Context, eventID, customerID kernel.UUID) (*cart.Cart, error)

	// GetByItemID retrieves the cart containing the line.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*cart.Cart, error)

	// AddItem inserts a line.
	AddItem(ctx context.Context, item *cart.Item) error

	// UpdateItem writes the quantity of a line.
	UpdateItem(ctx context.Context, item *cart.Item) error

	// RemoveItem deletes a line. Deleting an unknown line is not an error.
	RemoveItem(ctx context.Context, itemID kernel.UUID) error
}

// OrderRepository defines the persistence contract for order aggregates
// and their line snapshots.
type OrderRepository interface {
	// Add persists a new order with its lines. A derived order whose source
	// already has one yields ErrAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order that is still pending.
	// A row already decided or cancelled yields order.ErrStatusTransitionNotAllowed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBySourceOrder retrieves the order derived from sourceID.
	GetBySourceOrder(ctx context.Context, sourceID kernel.UUID) (*order.Order, error)
}

// OutboxRepository stores intents written alongside a state change.
type OutboxRepository interface {
	// Add persists a new message. A second message with the same kind and
	// aggregate yields ErrAlreadyExists.
	Add(ctx context.Context, message *outbox.Message) error

	// Update persists attempts, the last error and the processed time.
	Update(ctx context.Context, message *outbox.Message) error

	// GetByAggregate retrieves the message of kind for an aggregate.
	GetByAggregate(ctx context.Context, kind outbox.Kind, aggregateID kernel.UUID) (*outbox.Message, error)

	// ListPending returns up to limit unprocessed messages of kind with fewer
	// than maxAttempts attempts, oldest first.
	ListPending(ctx context.Context, kind outbox.Kind, maxAttempts, limit int) ([]*outbox.Message, error)
}

// ProviderRepository defines the persistence contract for providers.
type ProviderRepository interface {
	Add(ctx context.Context, provider *catalog.Provider) error
	Update(ctx context.Context, provider *catalog.Provider) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Provider, error)

	// GetByUserID resolves the provider profile of a user.
	// Returns ObjectNotFoundError for users without one.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.Provider, error)
}

// FoodItemRepository defines the persistence contract for food items.
type FoodItemRepository interface {
	Add(ctx context.Context, item *catalog.FoodItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error)

	// Update writes every mutable field of an existing dish.
	Update(ctx context.Context, item *catalog.FoodItem) error
}

// MenuRepository defines the persistence contract for menus.
type MenuRepository interface {
	Add(ctx context.Context, menu *catalog.Menu) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error)
}

// EventRepository defines the persistence contract for events.
type EventRepository interface {
	Add(ctx context.Context, e *event.Event) error
	Get(ctx context.Context, id kernel.UUID) (*event.Event, error)
}
