package services

import "errors"

// Domain errors. Controllers map these to HTTP statuses with errors.Is;
// anything else coming out of a service is a storage fault and surfaces
// as a 500.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidProduct  = errors.New("name and a non-negative price are required")
	ErrProductNotFound = errors.New("product not found")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")

	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)
