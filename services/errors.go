package services

import "errors"

// Validation conditions surfaced to the user. The triggering state
// change is not applied when one of these is returned.
var (
	ErrEmptyCart          = errors.New("cannot place an order with an empty cart")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneTaken         = errors.New("user with this phone number already exists")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)
