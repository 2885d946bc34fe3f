package lifecycle

import "time"

// Message - событие order.lifecycle.changed в топике.
type Message struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	Action     string    `json:"action"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}
