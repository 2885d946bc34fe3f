package dto

import (
	"time"

	"github.com/samber/lo"
	"ordertracker/internal/entities"
	"ordertracker/internal/service/analytics"
	"ordertracker/internal/service/lifecycle"
	"ordertracker/internal/service/policy"
	"ordertracker/internal/service/query"
)

const dateLayout = time.DateOnly

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func FromOrder(order entities.Order) Order {
	result := Order{
		ID:            order.ID,
		Name:          order.Name,
		Number:        order.Number,
		Work:          order.Work,
		Status:        order.Status.String(),
		Type:          order.Type.String(),
		PaymentStatus: order.PaymentStatus.String(),
		AddDate:       formatDate(order.AddDate),
		DeliveryDate:  formatDate(order.DeliveryDate),
		Revision:      order.Revision,
	}
	if order.Attachment != nil {
		result.Attachment = &Attachment{
			URL:      order.Attachment.URL,
			PublicID: order.Attachment.PublicID,
		}
	}
	return result
}

// FromOrders никогда не возвращает nil, чтобы в JSON был [] а не null.
func FromOrders(orders []entities.Order) []Order {
	return lo.Map(orders, func(order entities.Order, _ int) Order {
		return FromOrder(order)
	})
}

func NewOrderList(orders []entities.Order) OrderList {
	return OrderList{
		Orders: FromOrders(orders),
		Total:  len(orders),
	}
}

func fromNextStep(step *lifecycle.NextStep) *NextStep {
	if step == nil {
		return nil
	}
	return &NextStep{
		Action: step.Action.String(),
		Label:  step.Label(),
	}
}

func FromDetails(order entities.Order, actions policy.Actions, nextStatus, nextPayment *lifecycle.NextStep) OrderDetails {
	return OrderDetails{
		Order: FromOrder(order),
		Actions: lo.Map(actions.List(), func(a policy.Action, _ int) string {
			return string(a)
		}),
		NextStatus:  fromNextStep(nextStatus),
		NextPayment: fromNextStep(nextPayment),
	}
}

func FromLifecycleEvents(orderID string, events []entities.LifecycleEvent) OrderHistory {
	return OrderHistory{
		OrderID: orderID,
		Events: lo.Map(events, func(e entities.LifecycleEvent, _ int) LifecycleEvent {
			return LifecycleEvent{
				EventID:    e.EventID,
				OrderID:    e.OrderID,
				Action:     e.Action.String(),
				From:       e.From,
				To:         e.To,
				Actor:      e.Actor,
				OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
			}
		}),
	}
}

func fromStats(s analytics.Stats) Stats {
	return Stats{
		Total:   s.Total,
		Pending: s.Pending,
		Running: s.Running,
		Done:    s.Done,
		Unpaid:  s.Unpaid,
		Paid:    s.Paid,
		Inquiry: s.Inquiry,
		Confirm: s.Confirm,
	}
}

func fromBuckets(buckets []analytics.Bucket) []Bucket {
	return lo.Map(buckets, func(b analytics.Bucket, _ int) Bucket {
		return Bucket{Name: b.Name, Value: b.Value}
	})
}

func FromDashboard(d analytics.Dashboard) Dashboard {
	return Dashboard{
		Stats:  fromStats(d.Stats),
		Recent: FromOrders(d.Recent),
	}
}

func FromReport(r analytics.Report) Analytics {
	return Analytics{
		Stats:   fromStats(r.Stats),
		Status:  fromBuckets(r.Breakdowns.Status),
		Payment: fromBuckets(r.Breakdowns.Payment),
		Type:    fromBuckets(r.Breakdowns.Type),
		Monthly: lo.Map(r.Monthly, func(b analytics.MonthBucket, _ int) MonthBucket {
			return MonthBucket{
				Label: b.Label(),
				Year:  b.Year,
				Month: int(b.Month),
				Count: b.Count,
			}
		}),
	}
}

func FromCalendar(year int, month time.Month, cells []query.CalendarCell) CalendarMonth {
	return CalendarMonth{
		Year:  year,
		Month: int(month),
		Cells: lo.Map(cells, func(c query.CalendarCell, _ int) CalendarCell {
			return CalendarCell{
				Date:    c.Date.Format(dateLayout),
				InMonth: c.InMonth,
				Orders:  FromOrders(c.Orders),
			}
		}),
	}
}

func FromClientState(state entities.ClientState) ClientState {
	return ClientState{
		Installed:     state.Installed,
		Authenticated: state.Authenticated,
	}
}

func FromClientStateEntry(entry entities.ClientStateEntry) ClientStateEntry {
	return ClientStateEntry{
		Key:       entry.Key.String(),
		Value:     entry.Value,
		UpdatedAt: entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
