// Package services contains stateless domain services that coordinate
// multiple aggregates, currently the AgentPool that binds delivery agents
// to home-delivery orders.
package services
