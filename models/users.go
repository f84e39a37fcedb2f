package models

// User is a customer account. Phone is the unique login identifier.
// LoyaltyPoints only ever grows, and only through the award workflow.
type User struct {
	ID            int    `json:"id"`
	Phone         string `json:"phone"`
	Password      string `json:"password,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// Public returns a copy safe to hand to API responses.
func (u User) Public() User {
	u.Password = ""
	return u
}
