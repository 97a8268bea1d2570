// Package menu contains the MenuItem entity. The menu is seeded once at
// first startup and is read-only afterwards.
package menu

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is one entry of the fixed menu.
type MenuItem struct {
	// id is assigned by the store on first persistence; 0 until then
	id    int64
	name  string
	price float64

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item with a non-negative price.
func NewMenuItem(name string, price float64) (*MenuItem, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}

	return &MenuItem{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreMenuItem reconstructs a menu item from persistent storage.
func RestoreMenuItem(id int64, name string, price float64) (*MenuItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid menu item id", id))
	}

	item, err := NewMenuItem(name, price)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the menu item was created via a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the store-assigned menu item id, or 0 before first persistence.
func (m *MenuItem) ID() int64 {
	return m.id
}

// Name returns the item name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}
