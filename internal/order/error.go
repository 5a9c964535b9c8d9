package order

import "errors"

var (
	ErrContactNotOwned = errors.New("contact does not belong to user")
	ErrOrderNotFound   = errors.New("basket not found or already placed")
	ErrOrderEmpty      = errors.New("basket is empty")
	ErrNotAPartner     = errors.New("only shop accounts can list partner orders")
)
