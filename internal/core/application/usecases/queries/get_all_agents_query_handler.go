package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler retrieves the delivery agent fleet from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent fleet queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery agents.
// Returns the fleet sorted by id with current availability status.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status
		FROM delivery_agents
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent GetAllAgentsQueryResponse

		err = rows.Scan(
			&agent.ID,
			&agent.Name,
			&agent.Status,
		)
		if err != nil {
			return nil, err
		}

		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
