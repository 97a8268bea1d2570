package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves the order history of one user.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query for one user's orders.
// Returns the orders newest first; a user with no orders gets an empty slice.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.delivery_type,
			o.status,
			o.time_remaining,
			o.created_at,
			a.name
		FROM orders o
		LEFT JOIN delivery_agents a ON a.id = o.assigned_agent_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response OrderQueryResponse
		var agentName sql.NullString

		err = rows.Scan(
			&response.ID,
			&response.DeliveryType,
			&response.Status,
			&response.TimeRemaining,
			&response.CreatedAt,
			&agentName,
		)
		if err != nil {
			return nil, err
		}

		if agentName.Valid {
			response.AgentName = &agentName.String
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items, orders[i].Total, err = loadOrderItems(ctx, h.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}
