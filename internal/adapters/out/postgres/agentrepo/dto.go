// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence.
package agentrepo

import (
	"foodorder/internal/core/domain/model/agent"
)

// AgentDTO represents the database structure for persisting delivery agents.
type AgentDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:varchar(255)"`
	Status string `gorm:"type:varchar(32);index"`
}

// TableName specifies the database table name for delivery agents.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:     aggregate.ID(),
		Name:   aggregate.Name(),
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	return agent.RestoreAgent(dto.ID, dto.Name, agent.Status(dto.Status))
}
