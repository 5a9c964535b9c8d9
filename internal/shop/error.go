package shop

import "errors"

var (
	ErrShopNotFound = errors.New("shop not found")
	ErrNotAPartner  = errors.New("only shop accounts can manage partner state")
	ErrBadState     = errors.New("state must be 'on' or 'off'")
)
