package history

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidEvent   = errors.New("invalid lifecycle event")
)
