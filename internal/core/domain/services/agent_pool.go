package services

import (
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/order"
)

// ErrNoAgentAvailable is returned when the pool holds no available agent.
// It is the only backpressure signal in the system: the caller must reject
// the home-delivery order outright rather than queue it.
var ErrNoAgentAvailable = errors.New("no delivery agent available")

// AgentPool is the domain service that binds delivery agents to orders.
//
// Selection is first-found with no fairness or round-robin guarantee. The
// caller is responsible for loading the candidate agents under a lock that
// makes the find-available-then-mark-busy sequence atomic against concurrent
// acquisitions (the postgres adapter uses FOR UPDATE SKIP LOCKED for this).
type AgentPool struct{}

// NewAgentPool creates a new AgentPool instance.
func NewAgentPool() AgentPool {
	return AgentPool{}
}

// Acquire picks the first available agent, marks it busy and binds it to the
// order. Returns ErrNoAgentAvailable when none of the candidates is free; in
// that case neither the order nor any agent is modified.
func (p AgentPool) Acquire(o *order.Order, agents []*agent.Agent) (*agent.Agent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if !a.IsAvailable() {
			continue
		}

		if err := a.MarkBusy(); err != nil {
			return nil, err
		}

		if err := o.AssignAgent(a.ID()); err != nil {
			return nil, err
		}

		return a, nil
	}

	return nil, ErrNoAgentAvailable
}

// Release returns an agent to the pool. Idempotent: releasing an agent that
// is already available is a no-op.
func (p AgentPool) Release(a *agent.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.Release()
	return nil
}
