// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is generated by the store on insert; line items live in their own
// table and are written together with the header in one transaction.
type OrderDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	UserID          int64 `gorm:"index;not null"`
	CreatedAt       time.Time
	DeliveryType    string `gorm:"type:varchar(32)"`
	Status          string `gorm:"type:varchar(32);index"`
	AssignedAgentID *int64 `gorm:"index"`
	TimeRemaining   int
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order in the database.
// The menu item reference is not a foreign key: dangling references are
// kept in storage and only filtered out by the read side.
type OrderItemDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index;not null"`
	MenuItemID int64
	Quantity   int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero aggregate id maps to a zero DTO id so the store assigns one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID(),
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID(),
		UserID:          aggregate.UserID(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveryType:    aggregate.DeliveryType().String(),
		Status:          aggregate.Status().String(),
		AssignedAgentID: aggregate.AssignedAgentID(),
		TimeRemaining:   aggregate.TimeRemaining(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.NewLineItem(item.MenuItemID, item.Quantity))
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.CreatedAt,
		kernel.ParseDeliveryType(dto.DeliveryType),
		order.Status(dto.Status),
		dto.AssignedAgentID,
		dto.TimeRemaining,
		items,
	)
}
