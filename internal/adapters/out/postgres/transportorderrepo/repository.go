package transportorderrepo

import (
	"context"
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportOrderRepository implements TransportOrderRepository using GORM.
type GormTransportOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransportOrderRepository creates a new GORM transport order
// repository.
func NewGormTransportOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportOrderRepository {
	return &GormTransportOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transport order to the database.
func (r *GormTransportOrderRepository) Add(ctx context.Context, aggregate *transportorder.TransportOrder) error {
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

// Update saves an existing transport order to the database. The full row is
// replaced so that fields cleared on the aggregate, like an unlinked transport
// unit, are cleared in the store too.
func (r *GormTransportOrderRepository) Update(ctx context.Context, aggregate *transportorder.TransportOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TransportOrderDTO{}).
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

// Get retrieves a transport order by ID.
func (r *GormTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.TransportOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTransportUnit retrieves all orders referencing the given transport
// unit, regardless of state.
func (r *GormTransportOrderRepository) GetByTransportUnit(
	ctx context.Context,
	bk kernel.Barcode,
) ([]*transportorder.TransportOrder, error) {
	if err := bk.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransportOrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "transport_unit_bk = ?", bk.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInState retrieves all orders currently in the given state.
func (r *GormTransportOrderRepository) GetAllInState(
	ctx context.Context,
	state transportorder.State,
) ([]*transportorder.TransportOrder, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransportOrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "state = ?", int(state)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountInState counts the orders for a transport unit in the given state.
func (r *GormTransportOrderRepository) CountInState(
	ctx context.Context,
	bk kernel.Barcode,
	state transportorder.State,
) (int, error) {
	if err := bk.Validate(); err != nil {
		return 0, err
	}
	if err := state.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&TransportOrderDTO{}).
		Where("transport_unit_bk = ? AND state = ?", bk.String(), int(state)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func toDomainSlice(dtos []TransportOrderDTO) ([]*transportorder.TransportOrder, error) {
	orders := make([]*transportorder.TransportOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
