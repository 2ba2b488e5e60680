package commands_test

import (
	"errors"
	"testing"

	"transportation/internal/core/application/usecases/commands"
	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"
	"transportation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLoadUnitCommand(t *testing.T) {
	t.Run("creates command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateLoadUnitCommand(id, "TU000001", "A/1", "SKU-100")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.LoadUnitID().IsEqual(id))
		assert.Equal(t, "TU000001", cmd.TransportUnitBK().String())
		assert.Equal(t, "A/1", cmd.PhysicalPosition())
		assert.Equal(t, "SKU-100", cmd.ProductSKU())
	})

	t.Run("product is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateLoadUnitCommand(kernel.NewUUID(), "TU000001", "A/1", "")

		require.NoError(t, err)
		assert.Empty(t, cmd.ProductSKU())
	})

	t.Run("rejects empty transport unit", func(t *testing.T) {
		_, err := commands.NewCreateLoadUnitCommand(kernel.NewUUID(), "", "A/1", "")

		require.Error(t, err)
	})

	t.Run("rejects empty physical position", func(t *testing.T) {
		_, err := commands.NewCreateLoadUnitCommand(kernel.NewUUID(), "TU000001", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		cmd := commands.CreateLoadUnitCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateLoadUnitCommandIsNotConstructed)
	})
}

func TestCreateLoadUnitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLoadUnitCommand(kernel.NewUUID(), "TU000001", "A/1", "SKU-100")
	require.NoError(t, err)

	repo := new(MockLoadUnitRepository)
	uow := new(MockLoadUnitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadUnitRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*loadunit.LoadUnit")).
			Run(func(args mock.Arguments) {
				unit := args.Get(1).(*loadunit.LoadUnit)
				assert.True(t, unit.ID().IsEqual(cmd.LoadUnitID()))
				assert.Equal(t, "A/1", unit.PhysicalPosition())
				assert.Equal(t, "SKU-100", unit.ProductSKU())
				assert.False(t, unit.IsLocked())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateLoadUnitCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateLoadUnitCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLoadUnitCommand(kernel.NewUUID(), "TU000001", "A/1", "")
	require.NoError(t, err)

	repo := new(MockLoadUnitRepository)
	uow := new(MockLoadUnitUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadUnitRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("duplicate position")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadUnitUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateLoadUnitCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
