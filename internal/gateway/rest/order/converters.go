package order

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

const wireDateLayout = time.DateOnly

func toDomain(dto *OrderDTO, loc *time.Location) *entities.Order {
	if dto == nil {
		return nil
	}

	order := &entities.Order{
		ID:            dto.ID,
		Name:          dto.OrderName,
		Number:        dto.Number,
		Work:          dto.Work,
		Status:        entities.OrderStatusType(dto.Status),
		Type:          entities.OrderType(dto.Type),
		PaymentStatus: entities.PaymentStatusType(dto.PaymentStatus),
		AddDate:       parseWireDate(dto.AddDate, loc),
		DeliveryDate:  parseWireDate(dto.DeliveryDate, loc),
		Revision:      dto.Version,
	}

	// вложение только когда есть обе половины
	if dto.URL != "" && dto.PublicID != "" {
		order.Attachment = &entities.Attachment{
			URL:      dto.URL,
			PublicID: dto.PublicID,
		}
	}

	return order
}

func toDomainList(dtos []OrderDTO, loc *time.Location) []entities.Order {
	if len(dtos) == 0 {
		return []entities.Order{}
	}

	return lo.Map(dtos, func(dto OrderDTO, _ int) entities.Order {
		return *toDomain(&dto, loc)
	})
}

// parseWireDate: хранилище отдает то ISO-время, то голую дату. Это календарный
// день по UTC, он переносится в loc как полночь того же числа.
// Нераспознанное значение становится нулевым временем.
func parseWireDate(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(wireDateLayout, s)
	}
	if err != nil {
		return time.Time{}
	}

	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func formatWireDate(t time.Time) string {
	return t.Format(wireDateLayout)
}

// formFieldsCreate - поля multipart-формы создания.
func formFieldsCreate(payload entities.OrderCreate) [][2]string {
	return [][2]string{
		{"orderName", payload.Name},
		{"number", payload.Number},
		{"work", payload.Work},
		{"status", payload.Status.String()},
		{"addDate", formatWireDate(payload.AddDate)},
		{"deliveryDate", formatWireDate(payload.DeliveryDate)},
		{"type", payload.Type.String()},
		{"paymentStatus", payload.PaymentStatus.String()},
	}
}

// formFieldsModify отправляет только измененные поля.
func formFieldsModify(modify entities.OrderModify) [][2]string {
	fields := make([][2]string, 0, 8)

	if modify.Name != nil {
		fields = append(fields, [2]string{"orderName", *modify.Name})
	}
	if modify.Number != nil {
		fields = append(fields, [2]string{"number", *modify.Number})
	}
	if modify.Work != nil {
		fields = append(fields, [2]string{"work", *modify.Work})
	}
	if modify.Status != nil {
		fields = append(fields, [2]string{"status", modify.Status.String()})
	}
	if modify.AddDate != nil {
		fields = append(fields, [2]string{"addDate", formatWireDate(*modify.AddDate)})
	}
	if modify.DeliveryDate != nil {
		fields = append(fields, [2]string{"deliveryDate", formatWireDate(*modify.DeliveryDate)})
	}
	if modify.Type != nil {
		fields = append(fields, [2]string{"type", modify.Type.String()})
	}
	if modify.PaymentStatus != nil {
		fields = append(fields, [2]string{"paymentStatus", modify.PaymentStatus.String()})
	}

	return fields
}
