// Package dto описывает JSON-контракт HTTP API.
package dto

type PingResponse struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Attachment struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Order struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Number        string      `json:"number"`
	Work          string      `json:"work"`
	Status        string      `json:"status"`
	Type          string      `json:"type"`
	PaymentStatus string      `json:"paymentStatus"`
	AddDate       string      `json:"addDate"`
	DeliveryDate  string      `json:"deliveryDate"`
	Attachment    *Attachment `json:"attachment,omitempty"`
	Revision      int         `json:"revision"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type NextStep struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

type OrderDetails struct {
	Order       Order     `json:"order"`
	Actions     []string  `json:"actions"`
	NextStatus  *NextStep `json:"nextStatus,omitempty"`
	NextPayment *NextStep `json:"nextPayment,omitempty"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type LifecycleEvent struct {
	EventID    string `json:"eventId"`
	OrderID    string `json:"orderId"`
	Action     string `json:"action"`
	From       string `json:"from"`
	To         string `json:"to"`
	Actor      string `json:"actor"`
	OccurredAt string `json:"occurredAt"`
}

type OrderHistory struct {
	OrderID string           `json:"orderId"`
	Events  []LifecycleEvent `json:"events"`
}

type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Running int `json:"running"`
	Done    int `json:"done"`
	Unpaid  int `json:"unpaid"`
	Paid    int `json:"paid"`
	Inquiry int `json:"inquiry"`
	Confirm int `json:"confirm"`
}

type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MonthBucket struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

type Dashboard struct {
	Stats  Stats   `json:"stats"`
	Recent []Order `json:"recent"`
}

type Analytics struct {
	Stats   Stats         `json:"stats"`
	Status  []Bucket      `json:"status"`
	Payment []Bucket      `json:"payment"`
	Type    []Bucket      `json:"type"`
	Monthly []MonthBucket `json:"monthly"`
}

type CalendarCell struct {
	Date    string  `json:"date"`
	InMonth bool    `json:"inMonth"`
	Orders  []Order `json:"orders"`
}

type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

type CalendarDay struct {
	Date   string  `json:"date"`
	Orders []Order `json:"orders"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

type ClientState struct {
	Installed     bool `json:"installed"`
	Authenticated bool `json:"authenticated"`
}

type ClientStateValue struct {
	Value *bool `json:"value"`
}

type ClientStateEntry struct {
	Key       string `json:"key"`
	Value     bool   `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}
