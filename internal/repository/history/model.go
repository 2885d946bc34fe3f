package history

import "time"

type OrderEventDB struct {
	EventID    string
	OrderID    string
	Action     string
	FromValue  string
	ToValue    string
	Actor      string
	OccurredAt time.Time
}
