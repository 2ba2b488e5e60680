package commands

import (
	"context"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/unitlock"
)

// FuncStartedCounter adapts a function to the transportorder.StartedCounter
// interface.
type FuncStartedCounter func(ctx context.Context, bk kernel.Barcode) (int, error)

// CountStarted calls the wrapped function.
func (f FuncStartedCounter) CountStarted(ctx context.Context, bk kernel.Barcode) (int, error) {
	return f(ctx, bk)
}

// ChangeTransportOrderStateCommandHandler applies lifecycle transitions to
// transport orders.
//
// Starting an order checks with the store that no other order for the same
// transport unit is already started, then commits the new state. That
// check-then-act is racy across concurrent requests for the same unit, so the
// handler holds a lock keyed by the transport unit barcode from before the
// check until after commit. Orders without a transport unit need no lock;
// they cannot be started.
type ChangeTransportOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	unitLocks  *unitlock.KeyedMutex
}

// NewChangeTransportOrderStateCommandHandler creates a handler for state
// change operations. The keyed mutex must be shared by every handler instance
// operating on the same store.
func NewChangeTransportOrderStateCommandHandler(
	uowFactory OrderUoWFactory,
	unitLocks *unitlock.KeyedMutex,
) ChangeTransportOrderStateCommandHandler {
	return ChangeTransportOrderStateCommandHandler{
		uowFactory: uowFactory,
		unitLocks:  unitLocks,
	}
}

// Handle loads the order, runs the guarded transition and persists the result.
// A rejected transition surfaces as a *transportorder.StateChangeError and
// leaves the store untouched.
func (h *ChangeTransportOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeTransportOrderStateCommand) error {
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
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if bk := order.TransportUnitBK(); bk != nil {
		key := bk.String()
		h.unitLocks.Lock(key)
		defer h.unitLocks.Unlock(key)
	}

	counter := FuncStartedCounter(func(ctx context.Context, bk kernel.Barcode) (int, error) {
		return repo.CountInState(ctx, bk, transportorder.Started)
	})
	if err = order.ChangeState(ctx, counter, cmd.NewState()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
