package queries

import (
	"context"

	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/order"
)

// GetPendingOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out completed orders so the recovery job only re-arms live tasks.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders not yet done.
// Results are sorted by order id for consistent output.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			time_remaining
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.StatusDone.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pending GetPendingOrdersQueryResponse

		err = rows.Scan(
			&pending.ID,
			&pending.TimeRemaining,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, pending)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
