package order

// LineItem is a (menu item, quantity) pair belonging to one order.
//
// Neither the menu item reference nor the quantity is validated here. A
// line item pointing at a nonexistent menu item is persisted and silently
// dropped from joined projections; zero or negative quantities are
// persisted as given.
type LineItem struct {
	menuItemID int64
	quantity   int
}

// NewLineItem creates a line item. It accepts any menu item id and quantity
// by policy; see the type documentation.
func NewLineItem(menuItemID int64, quantity int) LineItem {
	return LineItem{
		menuItemID: menuItemID,
		quantity:   quantity,
	}
}

// MenuItemID returns the referenced menu item id.
func (li LineItem) MenuItemID() int64 {
	return li.menuItemID
}

// Quantity returns the ordered quantity as given by the caller.
func (li LineItem) Quantity() int {
	return li.quantity
}
