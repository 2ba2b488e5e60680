package queries

import (
	"context"

	"transportation/internal/core/domain/model/transportorder"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves all non-terminal transport orders
// from the database. Provides visibility into the in-flight workload.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Urgent orders come first: results are sorted by
// priority descending, then by ID for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]TransportOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transport_unit_bk,
			priority,
			state,
			source_location,
			target_location,
			target_location_group,
			start_date,
			end_date,
			problem_text
		FROM transport_orders
		WHERE state IN (?, ?, ?)
		ORDER BY priority DESC, id
	`, transportorder.Created, transportorder.Initialized, transportorder.Started).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransportOrderRows(rows)
}
