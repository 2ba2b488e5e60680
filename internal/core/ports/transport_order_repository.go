package ports

import (
	"context"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
)

// TransportOrderRepository defines the persistence contract for transport
// order aggregates.
type TransportOrderRepository interface {
	// Add persists a new transport order.
	Add(ctx context.Context, aggregate *transportorder.TransportOrder) error

	// Update persists changes to an existing transport order.
	Update(ctx context.Context, aggregate *transportorder.TransportOrder) error

	// Get retrieves a transport order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error)

	// GetByTransportUnit retrieves all orders referencing the given transport
	// unit, newest first.
	GetByTransportUnit(ctx context.Context, bk kernel.Barcode) ([]*transportorder.TransportOrder, error)

	// GetAllInState retrieves all orders currently in the given state.
	GetAllInState(ctx context.Context, state transportorder.State) ([]*transportorder.TransportOrder, error)

	// CountInState counts the orders for a transport unit in the given state.
	// With state Started this is the lookup behind the
	// one-started-order-per-unit rule.
	CountInState(ctx context.Context, bk kernel.Barcode, state transportorder.State) (int, error)
}
