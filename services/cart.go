package services

import "github.com/astrenrest/storefront/models"

// Cart aggregates line items in memory. It keeps at most one line per
// menu item id and drops a line as soon as its quantity reaches zero.
// Cart is not safe for concurrent use; Session serializes access.
type Cart struct {
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line or appends a new one
// with quantity 1.
func (c *Cart) Add(item models.MenuItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{MenuItem: item, Quantity: 1})
}

// UpdateQuantity sets a line's quantity, removing the line entirely
// when the new quantity is zero or below.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return
	}
}

func (c *Cart) Items() []models.CartItem {
	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total prices the cart in the given currency. Order creation uses this
// same function, so the displayed total and the stored order total can
// never diverge.
func (c *Cart) Total(cur models.Currency) float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price.In(cur) * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}
