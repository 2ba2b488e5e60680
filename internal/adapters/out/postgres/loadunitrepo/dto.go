// Package loadunitrepo provides data transfer objects and mapping functions
// for load unit persistence.
package loadunitrepo

import (
	"time"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"

	"github.com/google/uuid"
)

// LoadUnitDTO represents the database structure for persisting load unit
// aggregates. The unique index over transport unit and physical position
// enforces at the store level that a position is occupied at most once.
type LoadUnitDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransportUnitBK  string    `gorm:"type:varchar(40);uniqueIndex:idx_load_units_unit_position"`
	PhysicalPosition string    `gorm:"type:varchar(64);uniqueIndex:idx_load_units_unit_position"`
	Locked           bool
	ProductSKU       *string `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
	ChangedAt        time.Time
}

// TableName specifies the database table name for load unit entities.
func (LoadUnitDTO) TableName() string {
	return "load_units"
}

// fromDomain converts a load unit aggregate to its database representation.
func fromDomain(aggregate *loadunit.LoadUnit) LoadUnitDTO {
	var productSKU *string
	if sku := aggregate.ProductSKU(); sku != "" {
		productSKU = &sku
	}

	return LoadUnitDTO{
		ID:               aggregate.ID().Bytes(),
		TransportUnitBK:  aggregate.TransportUnitBK().String(),
		PhysicalPosition: aggregate.PhysicalPosition(),
		Locked:           aggregate.IsLocked(),
		ProductSKU:       productSKU,
		CreatedAt:        aggregate.CreatedAt(),
		ChangedAt:        aggregate.ChangedAt(),
	}
}

// toDomain converts a database DTO back to a load unit aggregate.
func toDomain(dto LoadUnitDTO) (*loadunit.LoadUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bk, err := kernel.NewBarcode(dto.TransportUnitBK)
	if err != nil {
		return nil, err
	}

	var productSKU string
	if dto.ProductSKU != nil {
		productSKU = *dto.ProductSKU
	}

	return loadunit.RestoreLoadUnit(
		id,
		bk,
		dto.PhysicalPosition,
		dto.Locked,
		productSKU,
		dto.CreatedAt,
		dto.ChangedAt,
	)
}
