package commands

import (
	"context"
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
)

// InitializeOrdersCommandHandler moves every created order that has its
// transport unit and a target to the Initialized state. Orders still missing
// data are skipped and picked up on a later pass.
type InitializeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewInitializeOrdersCommandHandler creates a handler for batch order
// initialization.
func NewInitializeOrdersCommandHandler(uowFactory OrderUoWFactory) InitializeOrdersCommandHandler {
	return InitializeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle initializes all complete created orders within one transaction.
func (h *InitializeOrdersCommandHandler) Handle(ctx context.Context, cmd InitializeOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportOrderRepository()
	orders, err := repo.GetAllInState(ctx, transportorder.Created)
	if err != nil {
		return err
	}

	counter := FuncStartedCounter(func(ctx context.Context, bk kernel.Barcode) (int, error) {
		return repo.CountInState(ctx, bk, transportorder.Started)
	})

	for _, order := range orders {
		err = order.ChangeState(ctx, counter, transportorder.Initialized)
		if errors.Is(err, transportorder.ErrIncompleteOrder) {
			continue
		}
		if err != nil {
			return err
		}

		if err = repo.Update(ctx, order); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
