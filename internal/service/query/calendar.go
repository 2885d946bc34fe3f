package query

import (
	"time"

	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

const dayLayout = time.DateOnly

type CalendarCell struct {
	Date    time.Time
	InMonth bool
	Orders  []entities.Order
}

// Day обрезает время до календарного дня в каноничной зоне loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// OrdersOnDate возвращает заказы, у которых дата доставки или дата добавления
// попадает на день. Каждый заказ встречается один раз.
func OrdersOnDate(orders []entities.Order, day time.Time, loc *time.Location) []entities.Order {
	target := dayKey(day, loc)

	matched := lo.Filter(orders, func(order entities.Order, _ int) bool {
		return dayKey(order.DeliveryDate, loc) == target || dayKey(order.AddDate, loc) == target
	})

	return lo.UniqBy(matched, func(order entities.Order) string {
		return order.ID
	})
}

// MonthGrid строит ячейки сетки в 7 колонок с воскресенья по субботу,
// начиная не позже 1-го числа и заканчивая не раньше последнего дня месяца.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]time.Time, 0, 42)
	for current := start; !current.After(last) || current.Weekday() != time.Sunday; current = current.AddDate(0, 0, 1) {
		cells = append(cells, current)
	}
	return cells
}

// CalendarMonth раскладывает заказы по ячейкам сетки месяца.
func CalendarMonth(orders []entities.Order, year int, month time.Month, loc *time.Location) []CalendarCell {
	index := make(map[string][]entities.Order)
	for _, order := range orders {
		deliveryKey := dayKey(order.DeliveryDate, loc)
		if deliveryKey != "" {
			index[deliveryKey] = append(index[deliveryKey], order)
		}
		addKey := dayKey(order.AddDate, loc)
		if addKey != "" && addKey != deliveryKey {
			index[addKey] = append(index[addKey], order)
		}
	}

	grid := MonthGrid(year, month, loc)
	return lo.Map(grid, func(date time.Time, _ int) CalendarCell {
		return CalendarCell{
			Date:    date,
			InMonth: date.Month() == month,
			Orders:  lo.UniqBy(index[date.Format(dayLayout)], func(o entities.Order) string { return o.ID }),
		}
	})
}

func dayKey(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return Day(t, loc).Format(dayLayout)
}
