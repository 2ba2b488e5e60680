package ports

import (
	"context"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"
)

// LoadUnitRepository defines the persistence contract for load unit
// aggregates. The store enforces that a transport unit carries at most one
// load unit per physical position.
type LoadUnitRepository interface {
	// Add persists a new load unit. Returns an error when the physical
	// position on the transport unit is already taken.
	Add(ctx context.Context, aggregate *loadunit.LoadUnit) error

	// Update persists changes to an existing load unit.
	Update(ctx context.Context, aggregate *loadunit.LoadUnit) error

	// GetByTransportUnit retrieves all load units on the given transport unit,
	// ordered by physical position.
	GetByTransportUnit(ctx context.Context, bk kernel.Barcode) ([]*loadunit.LoadUnit, error)
}
