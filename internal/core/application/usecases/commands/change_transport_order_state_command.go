package commands

import (
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/guard"
)

var (
	ErrChangeTransportOrderStateCommandIsNotConstructed = errors.New(
		"ChangeTransportOrderStateCommand must be created via NewChangeTransportOrderStateCommand constructor",
	)
)

// ChangeTransportOrderStateCommand requests a lifecycle transition for one
// transport order. Whether the transition is legal is decided by the order
// itself; the command only identifies the order and the requested state.
type ChangeTransportOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	newState transportorder.State

	guard guard.ConstructorGuard
}

// NewChangeTransportOrderStateCommand creates a state change command. The
// requested state must be a known lifecycle state; whether it is reachable
// from the order's current state is checked later, against the order.
func NewChangeTransportOrderStateCommand(
	orderID kernel.UUID,
	newState transportorder.State,
) (ChangeTransportOrderStateCommand, error) {
	cmd := ChangeTransportOrderStateCommand{
		newState: newState,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		newState.Validate(),
	); err != nil {
		return ChangeTransportOrderStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTransportOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeTransportOrderStateCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeTransportOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewState returns the requested lifecycle state.
func (c ChangeTransportOrderStateCommand) NewState() transportorder.State {
	return c.newState
}

func (c *ChangeTransportOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
