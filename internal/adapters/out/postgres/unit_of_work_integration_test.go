package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "transportation/internal/adapters/out/postgres"
	"transportation/internal/adapters/out/postgres/loadunitrepo"
	"transportation/internal/adapters/out/postgres/transportorderrepo"
	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects and runs migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&transportorderrepo.TransportOrderDTO{}, &loadunitrepo.LoadUnitDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE transport_orders, load_units").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.TransportOrderRepository())
	suite.NotNil(uow1.LoadUnitRepository())
	suite.NotNil(uow2.TransportOrderRepository())
	suite.NotNil(uow2.LoadUnitRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TU000001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TransportOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.TransportOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible through a fresh unit of work after commit
	newUow := suite.factory.Create()
	retrieved, err = newUow.TransportOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(transportorder.Created, retrieved.State())
	suite.Equal("TU000001", retrieved.TransportUnitBK().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TU000002")
	testUnit := suite.createTestLoadUnit("TU000002", "A/1")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TransportOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LoadUnitRepository().Add(ctx, testUnit)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.TransportOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	units, err := newUow.LoadUnitRepository().GetByTransportUnit(ctx, testUnit.TransportUnitBK())
	suite.Require().NoError(err)
	suite.Empty(units, "Load unit should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestOrder("TU000003")
	order2 := suite.createTestOrder("TU000004")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.TransportOrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.TransportOrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.TransportOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)

	_, err = uow1.TransportOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err)

	_, err = uow2.TransportOrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err)

	_, err = uow2.TransportOrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.TransportOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.TransportOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TU000005")

	// Without Begin the repository runs in auto-commit mode
	err := uow.TransportOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.TransportOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
}

// TestUnitOfWork_OrderLifecycleWorkflow walks one transport order through its
// whole lifecycle, persisting every step.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder("TU000006")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TransportOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	for _, state := range []transportorder.State{
		transportorder.Initialized,
		transportorder.Started,
		transportorder.Finished,
	} {
		err = testOrder.ChangeState(ctx, startedCounter(uow), state)
		suite.Require().NoError(err)
		err = uow.TransportOrderRepository().Update(ctx, testOrder)
		suite.Require().NoError(err)
	}

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.TransportOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(transportorder.Finished, retrieved.State())
	suite.NotNil(retrieved.StartDate())
	suite.NotNil(retrieved.EndDate())
}

// TestUnitOfWork_StartedCountWithinTransaction verifies the
// one-started-order-per-unit lookup sees uncommitted changes of its own
// transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StartedCountWithinTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := suite.createTestOrder("TU000007")
	second := suite.createTestOrder("TU000007")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	for _, o := range []*transportorder.TransportOrder{first, second} {
		err = uow.TransportOrderRepository().Add(ctx, o)
		suite.Require().NoError(err)

		err = o.ChangeState(ctx, startedCounter(uow), transportorder.Initialized)
		suite.Require().NoError(err)
		err = uow.TransportOrderRepository().Update(ctx, o)
		suite.Require().NoError(err)
	}

	// First order starts fine
	err = first.ChangeState(ctx, startedCounter(uow), transportorder.Started)
	suite.Require().NoError(err)
	err = uow.TransportOrderRepository().Update(ctx, first)
	suite.Require().NoError(err)

	// Second order for the same unit must not start
	err = second.ChangeState(ctx, startedCounter(uow), transportorder.Started)
	suite.Require().ErrorIs(err, transportorder.ErrUnitAlreadyMoving)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLoadUnitRepository_UniquePositionConstraint() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := suite.createTestLoadUnit("TU000008", "A/1")
	second := suite.createTestLoadUnit("TU000008", "A/1")

	err := uow.LoadUnitRepository().Add(ctx, first)
	suite.Require().NoError(err)

	err = uow.LoadUnitRepository().Add(ctx, second)
	suite.Require().Error(err, "Same position on same unit should violate the unique index")

	// Same position on another unit is fine
	other := suite.createTestLoadUnit("TU000009", "A/1")
	err = uow.LoadUnitRepository().Add(ctx, other)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLoadUnitRepository_UpdatePersistsLockAndProduct() {
	ctx := context.Background()
	uow := suite.factory.Create()

	unit := suite.createTestLoadUnit("TU000010", "B/2")

	err := uow.LoadUnitRepository().Add(ctx, unit)
	suite.Require().NoError(err)

	unit.Lock()
	err = unit.AssignProduct("SKU-200")
	suite.Require().NoError(err)
	err = uow.LoadUnitRepository().Update(ctx, unit)
	suite.Require().NoError(err)

	units, err := uow.LoadUnitRepository().GetByTransportUnit(ctx, unit.TransportUnitBK())
	suite.Require().NoError(err)
	suite.Require().Len(units, 1)
	suite.True(units[0].IsLocked())
	suite.Equal("SKU-200", units[0].ProductSKU())
}

// createTestOrder creates a valid transport order targeting a location.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(barcode string) *transportorder.TransportOrder {
	bk, err := kernel.NewBarcode(barcode)
	suite.Require().NoError(err)

	testOrder, err := transportorder.NewTransportOrder(kernel.NewUUID(), &bk)
	suite.Require().NoError(err)

	testOrder.SetTargetLocation("AISLE_01")
	return testOrder
}

// createTestLoadUnit creates a valid load unit on the given transport unit.
func (suite *UnitOfWorkIntegrationTestSuite) createTestLoadUnit(barcode, position string) *loadunit.LoadUnit {
	bk, err := kernel.NewBarcode(barcode)
	suite.Require().NoError(err)

	unit, err := loadunit.NewLoadUnit(kernel.NewUUID(), bk, position)
	suite.Require().NoError(err)
	return unit
}

// startedCounter adapts a unit of work to the domain's started-order lookup.
func startedCounter(uow ports.UnitOfWork) countStartedFunc {
	return func(ctx context.Context, bk kernel.Barcode) (int, error) {
		return uow.TransportOrderRepository().CountInState(ctx, bk, transportorder.Started)
	}
}

type countStartedFunc func(ctx context.Context, bk kernel.Barcode) (int, error)

func (f countStartedFunc) CountStarted(ctx context.Context, bk kernel.Barcode) (int, error) {
	return f(ctx, bk)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
