package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to that transaction. Client code
// must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TransportOrderRepository returns a repository bound to the current
	// transaction.
	TransportOrderRepository() TransportOrderRepository

	// LoadUnitRepository returns a repository bound to the current
	// transaction.
	LoadUnitRepository() LoadUnitRepository
}
