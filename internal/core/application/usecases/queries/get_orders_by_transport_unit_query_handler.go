package queries

import (
	"context"
	"database/sql"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByTransportUnitQueryHandler retrieves the transport orders of one
// transport unit directly from the database, bypassing the aggregate
// repositories.
type GetOrdersByTransportUnitQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByTransportUnitQueryHandler creates a handler for transport unit
// order lookups. Requires a GORM database connection.
func NewGetOrdersByTransportUnitQueryHandler(db *gorm.DB) GetOrdersByTransportUnitQueryHandler {
	return GetOrdersByTransportUnitQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for consistent output;
// an unknown transport unit yields an empty slice, not an error.
func (h GetOrdersByTransportUnitQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByTransportUnitQuery,
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
		WHERE transport_unit_bk = ?
		ORDER BY id
	`, query.TransportUnitBK().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransportOrderRows(rows)
}

func scanTransportOrderRows(rows *sql.Rows) ([]TransportOrderQueryResponse, error) {
	orders := make([]TransportOrderQueryResponse, 0)

	for rows.Next() {
		var id uuid.UUID
		var transportUnitBK, problemText sql.NullString
		var priority, state int
		var sourceLocation, targetLocation, targetLocationGroup string
		var startDate, endDate sql.NullTime

		err := rows.Scan(
			&id,
			&transportUnitBK,
			&priority,
			&state,
			&sourceLocation,
			&targetLocation,
			&targetLocationGroup,
			&startDate,
			&endDate,
			&problemText,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := TransportOrderQueryResponse{
			ID:                  orderID,
			TransportUnitBK:     transportUnitBK.String,
			Priority:            transportorder.PriorityLevel(priority),
			State:               transportorder.State(state),
			SourceLocation:      sourceLocation,
			TargetLocation:      targetLocation,
			TargetLocationGroup: targetLocationGroup,
			ProblemText:         problemText.String,
		}
		if startDate.Valid {
			t := startDate.Time
			resp.StartDate = &t
		}
		if endDate.Valid {
			t := endDate.Time
			resp.EndDate = &t
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
