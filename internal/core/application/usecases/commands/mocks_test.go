package commands_test

import (
	"context"

	"transportation/internal/core/application/usecases/commands"
	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTransportOrderRepository struct{ mock.Mock }

func (m *MockTransportOrderRepository) Add(ctx context.Context, o *transportorder.TransportOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Update(ctx context.Context, o *transportorder.TransportOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*transportorder.TransportOrder); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportOrderRepository) GetByTransportUnit(ctx context.Context, bk kernel.Barcode) ([]*transportorder.TransportOrder, error) {
	args := m.Called(ctx, bk)
	if orders, ok := args.Get(0).([]*transportorder.TransportOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportOrderRepository) GetAllInState(ctx context.Context, state transportorder.State) ([]*transportorder.TransportOrder, error) {
	args := m.Called(ctx, state)
	if orders, ok := args.Get(0).([]*transportorder.TransportOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransportOrderRepository) CountInState(ctx context.Context, bk kernel.Barcode, state transportorder.State) (int, error) {
	args := m.Called(ctx, bk, state)
	return args.Int(0), args.Error(1)
}

type MockLoadUnitRepository struct{ mock.Mock }

func (m *MockLoadUnitRepository) Add(ctx context.Context, lu *loadunit.LoadUnit) error {
	args := m.Called(ctx, lu)
	return args.Error(0)
}

func (m *MockLoadUnitRepository) Update(ctx context.Context, lu *loadunit.LoadUnit) error {
	args := m.Called(ctx, lu)
	return args.Error(0)
}

func (m *MockLoadUnitRepository) GetByTransportUnit(ctx context.Context, bk kernel.Barcode) ([]*loadunit.LoadUnit, error) {
	args := m.Called(ctx, bk)
	if units, ok := args.Get(0).([]*loadunit.LoadUnit); ok {
		return units, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) TransportOrderRepository() ports.TransportOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLoadUnitUoW struct{ mock.Mock }

func (m *MockLoadUnitUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUnitUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUnitUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUnitUoW) LoadUnitRepository() ports.LoadUnitRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadUnitRepository)
}

type MockLoadUnitUoWFactory struct{ mock.Mock }

func (m *MockLoadUnitUoWFactory) Create() commands.LoadUnitUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUnitUoW)
}
