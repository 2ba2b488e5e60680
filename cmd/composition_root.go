package cmd

import (
	"log/slog"

	httpserver "transportation/internal/adapters/in/http"
	"transportation/internal/adapters/out/i18n"
	"transportation/internal/adapters/out/postgres"
	"transportation/internal/core/application/usecases/commands"
	"transportation/internal/core/application/usecases/queries"
	"transportation/internal/core/ports"
	"transportation/internal/jobs"
	"transportation/internal/pkg/unitlock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	unitLocks  *unitlock.KeyedMutex
	translator ports.Translator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		unitLocks:  unitlock.NewKeyedMutex(),
		translator: i18n.NewEnglishTranslator(),
	}
}

func (c *CompositionRoot) CreateCreateTransportOrderCommandHandler() commands.CreateTransportOrderCommandHandler {
	return commands.NewCreateTransportOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeTransportOrderStateCommandHandler() commands.ChangeTransportOrderStateCommandHandler {
	return commands.NewChangeTransportOrderStateCommandHandler(c.orderUoWFactory(), c.unitLocks)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	return commands.NewReportProblemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateInitializeOrdersCommandHandler() commands.InitializeOrdersCommandHandler {
	return commands.NewInitializeOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateLoadUnitCommandHandler() commands.CreateLoadUnitCommandHandler {
	var f commands.LoadUnitUoWFactory = FuncLoadUnitUoWFactory(func() commands.LoadUnitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadUnitCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersByTransportUnitQueryHandler() queries.GetOrdersByTransportUnitQueryHandler {
	return queries.NewGetOrdersByTransportUnitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires all command and query handlers into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateCreateTransportOrderCommandHandler(),
		c.CreateChangeTransportOrderStateCommandHandler(),
		c.CreateReportProblemCommandHandler(),
		c.CreateCreateLoadUnitCommandHandler(),
		c.CreateGetOrdersByTransportUnitQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.translator,
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateInitializeOrdersCommandHandler(), logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLoadUnitUoWFactory func() commands.LoadUnitUoW

func (f FuncLoadUnitUoWFactory) Create() commands.LoadUnitUoW {
	return f()
}
