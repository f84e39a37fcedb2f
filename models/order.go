package models

type TotalPrice struct {
	Value    float64  `json:"value"`
	Currency Currency `json:"currency"`
}

// Order is created once from a cart snapshot and never recomputed.
// Items are copies of the menu items at submission time, so later menu
// edits do not change past orders. PointsAwarded flips false -> true at
// most once per order and never reverses.
type Order struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Date    string     `json:"date"`
	Time    string     `json:"time"`
	Message string     `json:"message,omitempty"`
	Items   []CartItem `json:"items"`
	Total   TotalPrice `json:"totalPrice"`
	// UserID is the customer's phone number, nil for guest checkout.
	UserID        *string `json:"userId,omitempty"`
	PointsAwarded bool    `json:"pointsAwarded"`
}
