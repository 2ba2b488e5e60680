package jobs

import (
	"context"
	"log/slog"

	"transportation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderInitializerJob manages the scheduled initialization of transport
// orders. Runs every second to move created orders that have become complete
// into the Initialized state.
type OrderInitializerJob struct {
	handler commands.InitializeOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderInitializerJob creates a new job for initializing transport orders.
// Uses InitializeOrdersCommandHandler to process all created orders every
// second.
func NewOrderInitializerJob(handler commands.InitializeOrdersCommandHandler, logger *slog.Logger) *OrderInitializerJob {
	return &OrderInitializerJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_initializer_job"),
	}
}

// Start begins the order initializer job to run every second.
func (j *OrderInitializerJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewInitializeOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order initializer job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order initializer job started (running every second)")
	return nil
}

// Stop stops the order initializer job.
func (j *OrderInitializerJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order initializer job stopped")
}
