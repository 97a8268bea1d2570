package ports

import (
	"context"

	"foodorder/internal/core/domain/model/agent"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent and attaches the store-assigned id.
	// Only the seeding path creates agents; the fleet is fixed afterwards.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists an agent's availability status.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by id.
	// Returns an errs.ObjectNotFoundError when no such agent exists.
	Get(ctx context.Context, id int64) (*agent.Agent, error)

	// GetAllAvailableLocked retrieves the currently available agents with
	// their rows locked for update within the surrounding transaction
	// (skipping rows locked by concurrent acquirers). This makes the
	// find-available-then-mark-busy sequence atomic: two concurrent order
	// creations can never select the same agent.
	GetAllAvailableLocked(ctx context.Context) ([]*agent.Agent, error)
}
