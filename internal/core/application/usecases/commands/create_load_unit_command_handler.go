package commands

import (
	"context"

	"transportation/internal/core/domain/model/loadunit"
)

// CreateLoadUnitCommandHandler handles the creation of load units. The
// uniqueness of (transport unit, physical position) is enforced by the store;
// a violation surfaces as the repository's add error.
type CreateLoadUnitCommandHandler struct {
	uowFactory LoadUnitUoWFactory
}

// NewCreateLoadUnitCommandHandler creates a handler for load unit creation.
func NewCreateLoadUnitCommandHandler(uowFactory LoadUnitUoWFactory) CreateLoadUnitCommandHandler {
	return CreateLoadUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the load unit and persists it transactionally.
func (h *CreateLoadUnitCommandHandler) Handle(ctx context.Context, cmd CreateLoadUnitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unit, err := loadunit.NewLoadUnit(cmd.LoadUnitID(), cmd.TransportUnitBK(), cmd.PhysicalPosition())
	if err != nil {
		return err
	}
	if sku := cmd.ProductSKU(); sku != "" {
		if err = unit.AssignProduct(sku); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadUnitRepository().Add(ctx, unit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
