// Package transportorderrepo provides data transfer objects and mapping
// functions for transport order persistence. It implements the repository
// pattern for the transport order aggregate, converting between domain
// entities and their database representation.
package transportorderrepo

import (
	"time"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
)

// TransportOrderDTO represents the database structure for persisting transport
// order aggregates. Indexed by transport unit and state for the lookups the
// lifecycle rules need.
type TransportOrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TransportUnitBK     *string    `gorm:"type:varchar(40);index:idx_transport_orders_unit_state"`
	Priority            int        `gorm:"type:smallint"`
	State               int        `gorm:"type:smallint;index:idx_transport_orders_unit_state"`
	SourceLocation      string     `gorm:"type:varchar(255)"`
	TargetLocation      string     `gorm:"type:varchar(255)"`
	TargetLocationGroup string     `gorm:"type:varchar(255)"`
	StartDate           *time.Time
	EndDate             *time.Time
	Problem             ProblemDTO `gorm:"embedded;embeddedPrefix:problem_"`
}

// TableName specifies the database table name for transport order entities.
func (TransportOrderDTO) TableName() string {
	return "transport_orders"
}

// ProblemDTO represents the embedded last-reported problem within the
// transport order table. All columns are null when no problem was reported.
type ProblemDTO struct {
	Text       *string `gorm:"type:text"`
	MessageNo  *string `gorm:"type:varchar(64)"`
	OccurredAt *time.Time
}

// fromDomain converts a transport order aggregate to its database
// representation.
func fromDomain(aggregate *transportorder.TransportOrder) TransportOrderDTO {
	var transportUnitBK *string
	if bk := aggregate.TransportUnitBK(); bk != nil {
		raw := bk.String()
		transportUnitBK = &raw
	}

	var problem ProblemDTO
	if p := aggregate.Problem(); p != nil {
		text := p.Text()
		occurredAt := p.OccurredAt()
		problem.Text = &text
		problem.OccurredAt = &occurredAt
		if no := p.MessageNo(); no != "" {
			problem.MessageNo = &no
		}
	}

	return TransportOrderDTO{
		ID:                  aggregate.ID().Bytes(),
		TransportUnitBK:     transportUnitBK,
		Priority:            int(aggregate.Priority()),
		State:               int(aggregate.State()),
		SourceLocation:      aggregate.SourceLocation(),
		TargetLocation:      aggregate.TargetLocation(),
		TargetLocationGroup: aggregate.TargetLocationGroup(),
		StartDate:           aggregate.StartDate(),
		EndDate:             aggregate.EndDate(),
		Problem:             problem,
	}
}

// toDomain converts a database DTO back to a transport order aggregate.
func toDomain(dto TransportOrderDTO) (*transportorder.TransportOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var transportUnitBK *kernel.Barcode
	if dto.TransportUnitBK != nil {
		bk, bkErr := kernel.NewBarcode(*dto.TransportUnitBK)
		if bkErr != nil {
			return nil, bkErr
		}
		transportUnitBK = &bk
	}

	var problem *transportorder.Message
	if dto.Problem.Text != nil {
		var messageNo string
		if dto.Problem.MessageNo != nil {
			messageNo = *dto.Problem.MessageNo
		}
		var occurredAt time.Time
		if dto.Problem.OccurredAt != nil {
			occurredAt = *dto.Problem.OccurredAt
		}

		msg, msgErr := transportorder.RestoreMessage(*dto.Problem.Text, messageNo, occurredAt)
		if msgErr != nil {
			return nil, msgErr
		}
		problem = &msg
	}

	return transportorder.RestoreTransportOrder(
		id,
		transportUnitBK,
		transportorder.PriorityLevel(dto.Priority),
		dto.SourceLocation,
		dto.TargetLocation,
		dto.TargetLocationGroup,
		transportorder.State(dto.State),
		dto.StartDate,
		dto.EndDate,
		problem,
	)
}
