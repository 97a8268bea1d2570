package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the manager projection of every order.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for all-order queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
// Each row carries the username of the ordering user.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.username,
			o.delivery_type,
			o.status,
			o.time_remaining,
			o.created_at,
			a.name
		FROM orders o
		INNER JOIN users u ON u.id = o.user_id
		LEFT JOIN delivery_agents a ON a.id = o.assigned_agent_id
		ORDER BY o.created_at DESC, o.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response OrderQueryResponse
		var agentName sql.NullString

		err = rows.Scan(
			&response.ID,
			&response.Username,
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
