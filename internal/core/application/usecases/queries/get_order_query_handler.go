package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"foodorder/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	var response OrderQueryResponse
	var agentName sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.delivery_type,
			o.status,
			o.time_remaining,
			o.created_at,
			a.name
		FROM orders o
		LEFT JOIN delivery_agents a ON a.id = o.assigned_agent_id
		WHERE o.id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&response.ID,
		&response.DeliveryType,
		&response.Status,
		&response.TimeRemaining,
		&response.CreatedAt,
		&agentName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return OrderQueryResponse{}, err
	}

	if agentName.Valid {
		response.AgentName = &agentName.String
	}

	response.Items, response.Total, err = loadOrderItems(ctx, h.db, response.ID)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	return response, nil
}
