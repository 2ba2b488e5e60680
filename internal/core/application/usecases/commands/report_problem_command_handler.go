package commands

import (
	"context"

	"transportation/internal/core/domain/model/transportorder"
)

// ReportProblemCommandHandler attaches problem messages to transport orders.
type ReportProblemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reports.
func NewReportProblemCommandHandler(uowFactory OrderUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, sets the problem message and persists the change.
func (h *ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	problem, err := transportorder.NewMessage(cmd.Text(), cmd.MessageNo())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = order.ReportProblem(problem); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
