package loadunit

import (
	"errors"
	"time"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/pkg/errs"
)

// ErrLoadUnitIsNotConstructed is returned when a LoadUnit instance was not
// created through NewLoadUnit or RestoreLoadUnit.
var ErrLoadUnitIsNotConstructed = errors.New(
	"LoadUnit must be created via NewLoadUnit constructor")

// LoadUnit divides a transport unit into physical areas. It exists only for
// separation concerns and can never be moved without its transport unit, so a
// LoadUnit without a transport unit barcode is invalid. The combination of
// transport unit and physical position is unique; the store enforces that.
type LoadUnit struct {
	id               kernel.UUID
	transportUnitBK  kernel.Barcode
	physicalPosition string
	locked           bool
	productSKU       string
	createdAt        time.Time
	changedAt        time.Time

	isConstructed bool
}

// NewLoadUnit creates a load unit on the given transport unit at the given
// physical position.
func NewLoadUnit(id kernel.UUID, transportUnitBK kernel.Barcode, physicalPosition string) (*LoadUnit, error) {
	if err := errors.Join(
		id.Validate(),
		transportUnitBK.Validate(),
	); err != nil {
		return nil, err
	}
	if physicalPosition == "" {
		return nil, errs.NewValueIsRequiredError("physicalPosition")
	}

	now := time.Now()
	return &LoadUnit{
		id:               id,
		transportUnitBK:  transportUnitBK,
		physicalPosition: physicalPosition,
		createdAt:        now,
		changedAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreLoadUnit rehydrates a load unit from persistence.
func RestoreLoadUnit(
	id kernel.UUID,
	transportUnitBK kernel.Barcode,
	physicalPosition string,
	locked bool,
	productSKU string,
	createdAt, changedAt time.Time,
) (*LoadUnit, error) {
	lu, err := NewLoadUnit(id, transportUnitBK, physicalPosition)
	if err != nil {
		return nil, err
	}

	lu.locked = locked
	lu.productSKU = productSKU
	lu.createdAt = createdAt
	lu.changedAt = changedAt
	return lu, nil
}

// Validate ensures the LoadUnit was created through a constructor.
func (lu *LoadUnit) Validate() error {
	if lu == nil || !lu.isConstructed {
		return ErrLoadUnitIsNotConstructed
	}
	return nil
}

// ID returns the load unit's unique identifier.
func (lu *LoadUnit) ID() kernel.UUID {
	return lu.id
}

// TransportUnitBK returns the barcode of the owning transport unit.
func (lu *LoadUnit) TransportUnitBK() kernel.Barcode {
	return lu.transportUnitBK
}

// PhysicalPosition returns where on the transport unit this load unit sits.
func (lu *LoadUnit) PhysicalPosition() string {
	return lu.physicalPosition
}

// IsLocked reports whether the load unit is locked for allocation.
func (lu *LoadUnit) IsLocked() bool {
	return lu.locked
}

// ProductSKU returns the SKU of the carried product, empty when none.
func (lu *LoadUnit) ProductSKU() string {
	return lu.productSKU
}

// CreatedAt returns when the load unit was created.
func (lu *LoadUnit) CreatedAt() time.Time {
	return lu.createdAt
}

// ChangedAt returns when the load unit last changed.
func (lu *LoadUnit) ChangedAt() time.Time {
	return lu.changedAt
}

// Lock marks the load unit as locked for allocation.
func (lu *LoadUnit) Lock() {
	lu.locked = true
	lu.touch()
}

// Unlock releases the allocation lock.
func (lu *LoadUnit) Unlock() {
	lu.locked = false
	lu.touch()
}

// AssignProduct sets the product carried in this load unit.
func (lu *LoadUnit) AssignProduct(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("productSKU")
	}
	lu.productSKU = sku
	lu.touch()
	return nil
}

func (lu *LoadUnit) touch() {
	lu.changedAt = time.Now()
}
