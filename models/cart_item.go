package models

// CartItem is a snapshot of a menu item plus the ordered quantity.
// The cart never holds two entries for the same menu item id and never
// holds an entry with quantity below one.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
