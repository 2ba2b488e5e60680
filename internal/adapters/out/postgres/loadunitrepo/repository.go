package loadunitrepo

import (
	"context"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/loadunit"

	"gorm.io/gorm"
)

// GormLoadUnitRepository implements LoadUnitRepository using GORM.
type GormLoadUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadUnitRepository creates a new GORM load unit repository.
func NewGormLoadUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadUnitRepository {
	return &GormLoadUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load unit to the database. A taken physical position on the
// transport unit surfaces as a unique constraint violation from the store.
func (r *GormLoadUnitRepository) Add(ctx context.Context, aggregate *loadunit.LoadUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing load unit to the database.
func (r *GormLoadUnitRepository) Update(ctx context.Context, aggregate *loadunit.LoadUnit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadUnitDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByTransportUnit retrieves all load units on the given transport unit,
// ordered by physical position.
func (r *GormLoadUnitRepository) GetByTransportUnit(
	ctx context.Context,
	bk kernel.Barcode,
) ([]*loadunit.LoadUnit, error) {
	if err := bk.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadUnitDTO
	if err := r.db.WithContext(ctx).
		Order("physical_position").
		Find(&dtos, "transport_unit_bk = ?", bk.String()).Error; err != nil {
		return nil, err
	}

	units := make([]*loadunit.LoadUnit, 0, len(dtos))
	for _, dto := range dtos {
		lu, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, lu)
	}

	return units, nil
}
