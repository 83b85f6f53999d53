package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup for a product/user/order/stock entry that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock marks a reservation that would drive quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
