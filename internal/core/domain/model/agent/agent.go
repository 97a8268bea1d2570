// Package agent contains the DeliveryAgent aggregate.
//
// The fleet is a fixed small set seeded at first startup. An agent's status
// is owned exclusively by the agent pool: it flips to busy when acquired for
// a home-delivery order and back to available exactly once, when that order
// reaches its terminal status.
package agent

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	// StatusAvailable means the agent can be acquired for a new order.
	StatusAvailable Status = "available"

	// StatusBusy means the agent is bound to an in-flight home-delivery order.
	StatusBusy Status = "busy"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through NewAgent or RestoreAgent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")

	// ErrAgentIsBusy is returned when acquiring an agent that is already
	// bound to an order.
	ErrAgentIsBusy = errors.New("agent is busy")
)

// Status is the availability state of a delivery agent.
type Status string

// Validate checks that the status is a known availability state.
func (s Status) Validate() error {
	if s != StatusAvailable && s != StatusBusy {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid agent status", string(s)))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// Agent is a delivery agent of the fixed fleet.
type Agent struct {
	// id is assigned by the store on first persistence; 0 until then
	id     int64
	name   string
	status Status

	guard guard.ConstructorGuard
}

// NewAgent creates an available agent with the given name.
func NewAgent(name string) (*Agent, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Agent{
		name:   name,
		status: StatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreAgent reconstructs an agent from persistent storage.
func RestoreAgent(id int64, name string, status Status) (*Agent, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid agent id", id))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Agent{
		id:     id,
		name:   name,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the agent was created via a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// ID returns the store-assigned agent id, or 0 before first persistence.
func (a *Agent) ID() int64 {
	return a.id
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Status returns the agent's availability state.
func (a *Agent) Status() Status {
	return a.status
}

// IsAvailable reports whether the agent can be acquired.
func (a *Agent) IsAvailable() bool {
	return a.status == StatusAvailable
}

// AssignID attaches the store-assigned id to a freshly persisted agent.
func (a *Agent) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid agent id", id))
	}
	if a.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("agent already has id %d", a.id))
	}

	a.id = id
	return nil
}

// MarkBusy binds the agent to an order. Only an available agent can be
// acquired; acquiring a busy one is a pool bookkeeping error.
func (a *Agent) MarkBusy() error {
	if a.status != StatusAvailable {
		return ErrAgentIsBusy
	}

	a.status = StatusBusy
	return nil
}

// Release returns the agent to the available state.
//
// Release is idempotent: releasing an already-available agent is a no-op,
// never an error, so a crashed-and-recovered lifecycle task cannot corrupt
// pool state by releasing twice.
func (a *Agent) Release() {
	a.status = StatusAvailable
}
