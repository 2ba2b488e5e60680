package commands

import (
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/guard"
)

var (
	ErrCreateTransportOrderCommandIsNotConstructed = errors.New(
		"CreateTransportOrderCommand must be created via NewCreateTransportOrderCommand constructor",
	)
)

// CreateTransportOrderCommand represents a request to create a new transport
// order. The transport unit and targets are optional at creation time; they
// must be present before the order can be initialized.
type CreateTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	transportUnitBK     *kernel.Barcode
	priority            transportorder.PriorityLevel
	sourceLocation      string
	targetLocation      string
	targetLocationGroup string

	guard guard.ConstructorGuard
}

// NewCreateTransportOrderCommand creates a command to register a new
// transport order. transportUnitBK may be empty; priority zero means the
// default priority.
func NewCreateTransportOrderCommand(
	orderID kernel.UUID,
	transportUnitBK string,
	priority transportorder.PriorityLevel,
	sourceLocation, targetLocation, targetLocationGroup string,
) (CreateTransportOrderCommand, error) {
	cmd := CreateTransportOrderCommand{
		sourceLocation:      sourceLocation,
		targetLocation:      targetLocation,
		targetLocationGroup: targetLocationGroup,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransportUnitBK(transportUnitBK),
		cmd.setPriority(priority),
	); err != nil {
		return CreateTransportOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateTransportOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransportUnitBK returns the transport unit to move, nil when none given.
func (c CreateTransportOrderCommand) TransportUnitBK() *kernel.Barcode {
	return c.transportUnitBK
}

// Priority returns the requested execution priority.
func (c CreateTransportOrderCommand) Priority() transportorder.PriorityLevel {
	return c.priority
}

// SourceLocation returns the current location of the transport unit.
func (c CreateTransportOrderCommand) SourceLocation() string {
	return c.sourceLocation
}

// TargetLocation returns the requested target location.
func (c CreateTransportOrderCommand) TargetLocation() string {
	return c.targetLocation
}

// TargetLocationGroup returns the requested target location group.
func (c CreateTransportOrderCommand) TargetLocationGroup() string {
	return c.targetLocationGroup
}

func (c *CreateTransportOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateTransportOrderCommand) setTransportUnitBK(transportUnitBK string) error {
	if transportUnitBK == "" {
		return nil
	}

	bk, err := kernel.NewBarcode(transportUnitBK)
	if err != nil {
		return err
	}
	c.transportUnitBK = &bk
	return nil
}

func (c *CreateTransportOrderCommand) setPriority(priority transportorder.PriorityLevel) error {
	if priority == transportorder.PriorityUnknown {
		c.priority = transportorder.PriorityNormal
		return nil
	}
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
