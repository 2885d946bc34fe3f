package order

// OrderDTO - заказ в формате удаленного хранилища.
type OrderDTO struct {
	ID            string `json:"_id"`
	OrderName     string `json:"orderName"`
	Number        string `json:"number"`
	Work          string `json:"work"`
	Status        string `json:"status"`
	Type          string `json:"type"`
	PaymentStatus string `json:"paymentStatus"`
	AddDate       string `json:"addDate"`
	DeliveryDate  string `json:"deliveryDate"`
	URL           string `json:"url,omitempty"`
	PublicID      string `json:"publicId,omitempty"`
	Version       int    `json:"__v"`
}

type deleteResponse struct {
	Message string `json:"message"`
}
