package clientstate

import "time"

type ClientStateDB struct {
	Username  string
	Key       string
	Value     bool
	UpdatedAt time.Time
}
