package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves the delivery agent fleet with current
// availability. Manager projection.
//
// Example:
//
//	query := NewGetAllAgentsQuery()
//	handler := NewGetAllAgentsQueryHandler(db)
//
//	agents, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve agents: %w", err)
//	}
//
//	for _, agent := range agents {
//	    fmt.Printf("Agent %s is %s\n", agent.Name, agent.Status)
//	}
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all delivery agents.
// This is a parameterless query that fetches the complete fleet.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAgentsQueryIsNotConstructed if validation fails.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse represents one delivery agent in the read model.
type GetAllAgentsQueryResponse struct {
	ID     int64
	Name   string
	Status string
}
