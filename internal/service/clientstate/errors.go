package clientstate

import "errors"

var (
	ErrUnknownKey      = errors.New("unknown client state key")
	ErrInvalidUsername = errors.New("invalid username")
	ErrEmptyUpdate     = errors.New("no client state keys to update")
)
