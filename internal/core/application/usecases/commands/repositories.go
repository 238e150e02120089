// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and one notification per outcome.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	FoodItemRepoFactory interface {
		FoodItemRepository() ports.FoodItemRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// CartUoW manages transactions for cart operations, which read the
	// catalog and events to validate references.
	CartUoW interface {
		TxManager
		CartRepoFactory
		EventRepoFactory
		ProviderRepoFactory
		FoodItemRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions across orders, the carts they are
	// placed from and the outbox written on decline.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... decide, then record the backup intent
	//   err = uow.OutboxRepository().Add(ctx, msg)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		ProviderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW manages transactions over outbox messages only.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// CatalogUoW manages transactions for providers, food items and menus.
	CatalogUoW interface {
		TxManager
		ProviderRepoFactory
		FoodItemRepoFactory
		MenuRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// EventUoW manages transactions for events.
	EventUoW interface {
		TxManager
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}
)
