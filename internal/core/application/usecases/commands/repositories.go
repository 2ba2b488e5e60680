// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"transportation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the transport order repository
	// within a transaction.
	OrderRepoFactory interface {
		TransportOrderRepository() ports.TransportOrderRepository
	}

	// LoadUnitRepoFactory provides access to the load unit repository within
	// a transaction.
	LoadUnitRepoFactory interface {
		LoadUnitRepository() ports.LoadUnitRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LoadUnitUoW manages transactions for load-unit-only operations.
	LoadUnitUoW interface {
		TxManager
		LoadUnitRepoFactory
	}

	// LoadUnitUoWFactory creates new load unit unit of work instances.
	LoadUnitUoWFactory interface {
		Create() LoadUnitUoW
	}

	// UoW manages transactions across both aggregate types.
	UoW interface {
		TxManager
		OrderRepoFactory
		LoadUnitRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
