// Package analytics считает сводки по коллекции заказов. Все функции чистые.
package analytics

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

const (
	trendMonths  = 6
	recentOrders = 3

	// корзина для значений хранилища, которых нет среди известных
	otherBucket = "Other"
)

type Stats struct {
	Total   int
	Pending int
	Running int
	Done    int
	Unpaid  int
	Paid    int
	Inquiry int
	Confirm int

	OtherStatus  int
	OtherPayment int
	OtherType    int
}

type Bucket struct {
	Name  string
	Value int
}

type Breakdowns struct {
	Status  []Bucket
	Payment []Bucket
	Type    []Bucket
}

type MonthBucket struct {
	Year  int
	Month time.Month
	Count int
}

func (b MonthBucket) Label() string {
	return fmt.Sprintf("%s %d", b.Month.String()[:3], b.Year)
}

type Report struct {
	Stats      Stats
	Breakdowns Breakdowns
	Monthly    []MonthBucket
}

type Dashboard struct {
	Stats  Stats
	Recent []entities.Order
}

func Summarize(orders []entities.Order) Stats {
	byStatus := lo.CountValuesBy(orders, func(o entities.Order) entities.OrderStatusType { return o.Status })
	byPayment := lo.CountValuesBy(orders, func(o entities.Order) entities.PaymentStatusType { return o.PaymentStatus })
	byType := lo.CountValuesBy(orders, func(o entities.Order) entities.OrderType { return o.Type })

	stats := Stats{
		Total:   len(orders),
		Pending: byStatus[entities.OrderPending],
		Running: byStatus[entities.OrderRunning],
		Done:    byStatus[entities.OrderDone],
		Unpaid:  byPayment[entities.PaymentUnpaid],
		Paid:    byPayment[entities.PaymentPaid],
		Inquiry: byType[entities.OrderInquiry],
		Confirm: byType[entities.OrderConfirm],
	}
	stats.OtherStatus = stats.Total - stats.Pending - stats.Running - stats.Done
	stats.OtherPayment = stats.Total - stats.Unpaid - stats.Paid
	stats.OtherType = stats.Total - stats.Inquiry - stats.Confirm

	return stats
}

// BuildBreakdowns готовит данные для графиков: нулевые корзины выбрасываются,
// порядок фиксированный.
func BuildBreakdowns(stats Stats) Breakdowns {
	return Breakdowns{
		Status: nonZero(
			Bucket{Name: entities.OrderPending.String(), Value: stats.Pending},
			Bucket{Name: entities.OrderRunning.String(), Value: stats.Running},
			Bucket{Name: entities.OrderDone.String(), Value: stats.Done},
			Bucket{Name: otherBucket, Value: stats.OtherStatus},
		),
		Payment: nonZero(
			Bucket{Name: entities.PaymentPaid.String(), Value: stats.Paid},
			Bucket{Name: entities.PaymentUnpaid.String(), Value: stats.Unpaid},
			Bucket{Name: otherBucket, Value: stats.OtherPayment},
		),
		Type: nonZero(
			Bucket{Name: entities.OrderInquiry.String(), Value: stats.Inquiry},
			Bucket{Name: entities.OrderConfirm.String(), Value: stats.Confirm},
			Bucket{Name: otherBucket, Value: stats.OtherType},
		),
	}
}

// MonthlyTrend группирует по месяцу даты добавления в зоне loc и оставляет
// последние шесть месяцев по возрастанию.
func MonthlyTrend(orders []entities.Order, loc *time.Location) []MonthBucket {
	counts := make(map[int]int)
	for _, order := range orders {
		if order.AddDate.IsZero() {
			continue
		}
		added := order.AddDate.In(loc)
		counts[added.Year()*100+int(added.Month())]++
	}

	keys := lo.Keys(counts)
	slices.Sort(keys)
	if len(keys) > trendMonths {
		keys = keys[len(keys)-trendMonths:]
	}

	return lo.Map(keys, func(key int, _ int) MonthBucket {
		return MonthBucket{
			Year:  key / 100,
			Month: time.Month(key % 100),
			Count: counts[key],
		}
	})
}

func Build(orders []entities.Order, loc *time.Location) Report {
	stats := Summarize(orders)
	return Report{
		Stats:      stats,
		Breakdowns: BuildBreakdowns(stats),
		Monthly:    MonthlyTrend(orders, loc),
	}
}

// BuildDashboard - плитки со счетчиками и первые заказы коллекции.
func BuildDashboard(orders []entities.Order) Dashboard {
	recent := orders
	if len(recent) > recentOrders {
		recent = recent[:recentOrders]
	}
	return Dashboard{
		Stats:  Summarize(orders),
		Recent: slices.Clone(recent),
	}
}

func nonZero(buckets ...Bucket) []Bucket {
	return lo.Filter(buckets, func(b Bucket, _ int) bool {
		return b.Value > 0
	})
}
