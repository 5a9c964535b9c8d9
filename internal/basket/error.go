package basket

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmptyItems      = errors.New("items is required")
)
