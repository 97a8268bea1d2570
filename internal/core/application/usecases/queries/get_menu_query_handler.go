package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the menu from the database.
// The menu is seeded once at first startup and never changes at runtime.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve the menu sorted by id.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM menu_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetMenuQueryResponse

		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}

		menu = append(menu, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
