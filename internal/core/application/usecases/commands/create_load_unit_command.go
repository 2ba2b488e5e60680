package commands

import (
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/pkg/errs"
	"transportation/internal/pkg/guard"
)

var (
	ErrCreateLoadUnitCommandIsNotConstructed = errors.New(
		"CreateLoadUnitCommand must be created via NewCreateLoadUnitCommand constructor",
	)
)

// CreateLoadUnitCommand represents a request to create a load unit on a
// transport unit.
type CreateLoadUnitCommand struct { //nolint:recvcheck //using for validation
	loadUnitID       kernel.UUID
	transportUnitBK  kernel.Barcode
	physicalPosition string
	productSKU       string

	guard guard.ConstructorGuard
}

// NewCreateLoadUnitCommand creates a load unit creation command. The
// transport unit and physical position are required; the product SKU may be
// empty.
func NewCreateLoadUnitCommand(
	loadUnitID kernel.UUID,
	transportUnitBK string,
	physicalPosition string,
	productSKU string,
) (CreateLoadUnitCommand, error) {
	cmd := CreateLoadUnitCommand{
		productSKU: productSKU,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadUnitID(loadUnitID),
		cmd.setTransportUnitBK(transportUnitBK),
		cmd.setPhysicalPosition(physicalPosition),
	); err != nil {
		return CreateLoadUnitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadUnitCommandIsNotConstructed)
}

// LoadUnitID returns the identifier for the new load unit.
func (c CreateLoadUnitCommand) LoadUnitID() kernel.UUID {
	return c.loadUnitID
}

// TransportUnitBK returns the owning transport unit.
func (c CreateLoadUnitCommand) TransportUnitBK() kernel.Barcode {
	return c.transportUnitBK
}

// PhysicalPosition returns the position on the transport unit.
func (c CreateLoadUnitCommand) PhysicalPosition() string {
	return c.physicalPosition
}

// ProductSKU returns the product to carry, empty when none.
func (c CreateLoadUnitCommand) ProductSKU() string {
	return c.productSKU
}

func (c *CreateLoadUnitCommand) setLoadUnitID(loadUnitID kernel.UUID) error {
	if err := loadUnitID.Validate(); err != nil {
		return err
	}
	c.loadUnitID = loadUnitID
	return nil
}

func (c *CreateLoadUnitCommand) setTransportUnitBK(transportUnitBK string) error {
	bk, err := kernel.NewBarcode(transportUnitBK)
	if err != nil {
		return err
	}
	c.transportUnitBK = bk
	return nil
}

func (c *CreateLoadUnitCommand) setPhysicalPosition(physicalPosition string) error {
	if physicalPosition == "" {
		return errs.NewValueIsRequiredError("physicalPosition")
	}
	c.physicalPosition = physicalPosition
	return nil
}
