package commands_test

import (
	"testing"

	"transportation/internal/core/application/usecases/commands"
	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTransportOrderCommand(t *testing.T) {
	t.Run("creates command with all fields", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateTransportOrderCommand(
			id, "TU000001", transportorder.PriorityHigh,
			"STOCK_01", "AISLE_01", "PICKING")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		require.NotNil(t, cmd.TransportUnitBK())
		assert.Equal(t, "TU000001", cmd.TransportUnitBK().String())
		assert.Equal(t, transportorder.PriorityHigh, cmd.Priority())
		assert.Equal(t, "STOCK_01", cmd.SourceLocation())
		assert.Equal(t, "AISLE_01", cmd.TargetLocation())
		assert.Equal(t, "PICKING", cmd.TargetLocationGroup())
	})

	t.Run("transport unit is optional", func(t *testing.T) {
		cmd, err := commands.NewCreateTransportOrderCommand(
			kernel.NewUUID(), "", transportorder.PriorityNormal, "", "", "")

		require.NoError(t, err)
		assert.Nil(t, cmd.TransportUnitBK())
	})

	t.Run("zero priority defaults to normal", func(t *testing.T) {
		cmd, err := commands.NewCreateTransportOrderCommand(
			kernel.NewUUID(), "TU000001", transportorder.PriorityUnknown, "", "", "")

		require.NoError(t, err)
		assert.Equal(t, transportorder.PriorityNormal, cmd.Priority())
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := commands.NewCreateTransportOrderCommand(
			kernel.NewUUID(), "TU000001", transportorder.PriorityLevel(42), "", "", "")

		require.Error(t, err)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateTransportOrderCommand(
			invalidID, "TU000001", transportorder.PriorityNormal, "", "", "")

		require.Error(t, err)
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		cmd := commands.CreateTransportOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateTransportOrderCommandIsNotConstructed)
	})
}
