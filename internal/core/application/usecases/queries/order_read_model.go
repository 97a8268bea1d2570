// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderItemQueryResponse is one priced line of an order read model.
// Only lines whose menu item still exists are included; a line item
// referencing an unknown menu id is silently dropped from the projection
// while remaining stored on the order.
type OrderItemQueryResponse struct {
	MenuItemID int64
	Name       string
	Price      float64
	Quantity   int
}

// OrderQueryResponse is the shared order read model returned by the order
// queries. Username is filled only by the all-orders projection and AgentName
// only when a delivery agent is assigned.
type OrderQueryResponse struct {
	ID            int64
	Username      string
	DeliveryType  string
	Status        string
	TimeRemaining int
	CreatedAt     time.Time
	AgentName     *string
	Items         []OrderItemQueryResponse
	Total         float64
}

// loadOrderItems fetches the priced lines of one order. The inner join on
// menu_items is what drops lines with dangling menu references.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderItemQueryResponse, float64, error) {
	items := make([]OrderItemQueryResponse, 0)
	total := 0.0

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.menu_item_id,
			m.name,
			m.price,
			i.quantity
		FROM order_items i
		INNER JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemQueryResponse

		err = rows.Scan(
			&item.MenuItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
		)
		if err != nil {
			return nil, 0, err
		}

		total += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
