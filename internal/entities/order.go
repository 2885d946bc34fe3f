package entities

import "time"

type Order struct {
	ID            string
	Name          string
	Number        string
	Work          string
	Status        OrderStatusType
	Type          OrderType
	PaymentStatus PaymentStatusType
	AddDate       time.Time
	DeliveryDate  time.Time
	// nil пока файл не загружен
	Attachment *Attachment
	// серверный счетчик версий, этот слой его только читает
	Revision int
}

type Attachment struct {
	URL      string
	PublicID string
}

type OrderStatusType string

const (
	OrderPending OrderStatusType = "Pending"
	OrderRunning OrderStatusType = "Running"
	OrderDone    OrderStatusType = "Done"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderType string

const (
	OrderInquiry OrderType = "Inquiry"
	OrderConfirm OrderType = "Confirm"
)

const DefaultOrderType = OrderInquiry

func (t OrderType) String() string {
	return string(t)
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "Unpaid"
	PaymentPaid   PaymentStatusType = "Paid"
)

const DefaultPaymentStatus = PaymentUnpaid

func (p PaymentStatusType) String() string {
	return string(p)
}

var (
	OrderStatuses   = []OrderStatusType{OrderPending, OrderRunning, OrderDone}
	OrderTypes      = []OrderType{OrderInquiry, OrderConfirm}
	PaymentStatuses = []PaymentStatusType{PaymentUnpaid, PaymentPaid}
)

// OrderDraft - сырой ввод формы создания заказа, еще не провалидированный.
type OrderDraft struct {
	Name          string
	Number        string
	Work          string
	Status        string
	Type          string
	PaymentStatus string
	AddDate       string
	DeliveryDate  string
}

// OrderCreate - провалидированный payload для создания в удаленном хранилище.
type OrderCreate struct {
	Name          string
	Number        string
	Work          string
	Status        OrderStatusType
	Type          OrderType
	PaymentStatus PaymentStatusType
	AddDate       time.Time
	DeliveryDate  time.Time
}

// OrderPatch - сырой ввод формы редактирования: nil означает "не трогать".
type OrderPatch struct {
	Name          *string
	Number        *string
	Work          *string
	Status        *string
	Type          *string
	PaymentStatus *string
	AddDate       *string
	DeliveryDate  *string
	Attachment    *Upload
}

// OrderModify - частичное обновление, nil означает "поле не меняется".
type OrderModify struct {
	Name          *string
	Number        *string
	Work          *string
	Status        *OrderStatusType
	Type          *OrderType
	PaymentStatus *PaymentStatusType
	AddDate       *time.Time
	DeliveryDate  *time.Time
	Attachment    *Upload
}

func (m OrderModify) IsEmpty() bool {
	return m.Name == nil &&
		m.Number == nil &&
		m.Work == nil &&
		m.Status == nil &&
		m.Type == nil &&
		m.PaymentStatus == nil &&
		m.AddDate == nil &&
		m.DeliveryDate == nil &&
		m.Attachment == nil
}

// Apply возвращает копию заказа с присланными полями. Вложение не трогается:
// его адрес знает только хранилище.
func (m OrderModify) Apply(order Order) Order {
	if m.Name != nil {
		order.Name = *m.Name
	}
	if m.Number != nil {
		order.Number = *m.Number
	}
	if m.Work != nil {
		order.Work = *m.Work
	}
	if m.Status != nil {
		order.Status = *m.Status
	}
	if m.Type != nil {
		order.Type = *m.Type
	}
	if m.PaymentStatus != nil {
		order.PaymentStatus = *m.PaymentStatus
	}
	if m.AddDate != nil {
		order.AddDate = *m.AddDate
	}
	if m.DeliveryDate != nil {
		order.DeliveryDate = *m.DeliveryDate
	}
	return order
}

// Upload - файл, прикладываемый к заказу при создании или обновлении.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SearchQuery - параметры удаленного поиска, пустые значения не отправляются.
type SearchQuery struct {
	Name     string
	Number   string
	FromDate string
	ToDate   string
}

func (q SearchQuery) Params() map[string]string {
	params := make(map[string]string, 4)
	if q.Name != "" {
		params["name"] = q.Name
	}
	if q.Number != "" {
		params["number"] = q.Number
	}
	if q.FromDate != "" {
		params["fromDate"] = q.FromDate
	}
	if q.ToDate != "" {
		params["toDate"] = q.ToDate
	}
	return params
}

// OrderFilter - локальный фильтр коллекции, "all" и пустая строка не фильтруют.
type OrderFilter struct {
	Text   string
	Status string
	Type   string
}

const FilterAll = "all"
