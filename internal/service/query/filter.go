package query

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"ordertracker/internal/entities"
)

// Filter применяет текст, статус и тип через AND, сохраняя порядок входа.
// Текст ищется без учета регистра в названии или номере заказа.
func Filter(orders []entities.Order, filter entities.OrderFilter) []entities.Order {
	fold := cases.Fold()
	text := fold.String(filter.Text)

	return lo.Filter(orders, func(order entities.Order, _ int) bool {
		if text != "" &&
			!strings.Contains(fold.String(order.Name), text) &&
			!strings.Contains(fold.String(order.Number), text) {
			return false
		}
		if isActive(filter.Status) && order.Status.String() != filter.Status {
			return false
		}
		if isActive(filter.Type) && order.Type.String() != filter.Type {
			return false
		}
		return true
	})
}

func isActive(value string) bool {
	return value != "" && value != entities.FilterAll
}
