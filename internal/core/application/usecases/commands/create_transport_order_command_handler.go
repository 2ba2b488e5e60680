package commands

import (
	"context"

	"transportation/internal/core/domain/model/transportorder"
)

// CreateTransportOrderCommandHandler handles the creation of transport
// orders. New orders start in Created state and wait to be initialized.
type CreateTransportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateTransportOrderCommandHandler creates a handler for order creation.
func NewCreateTransportOrderCommandHandler(uowFactory OrderUoWFactory) CreateTransportOrderCommandHandler {
	return CreateTransportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order with the requested targets and priority and
// persists it transactionally.
func (h *CreateTransportOrderCommandHandler) Handle(ctx context.Context, cmd CreateTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	order, err := transportorder.NewTransportOrder(cmd.OrderID(), cmd.TransportUnitBK())
	if err != nil {
		return err
	}
	if err = order.SetPriority(cmd.Priority()); err != nil {
		return err
	}
	order.SetSourceLocation(cmd.SourceLocation())
	order.SetTargetLocation(cmd.TargetLocation())
	order.SetTargetLocationGroup(cmd.TargetLocationGroup())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransportOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
