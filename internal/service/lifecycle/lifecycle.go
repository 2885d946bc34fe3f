// Package lifecycle вычисляет следующий допустимый переход заказа.
//
// Для Inquiry единственный шаг - перевод в Confirm (статус остается Pending),
// для Confirm - Pending -> Running -> Done. Оплата независима: Unpaid -> Paid.
// Функции чистые и ничего не мутируют.
package lifecycle

import "ordertracker/internal/entities"

type NextStep struct {
	Action entities.LifecycleAction
}

func NextStatus(status entities.OrderStatusType, orderType entities.OrderType) (NextStep, bool) {
	switch {
	case orderType == entities.OrderInquiry && status == entities.OrderPending:
		return NextStep{Action: entities.ActionConvertToConfirm}, true
	case orderType != entities.OrderConfirm:
		// неизвестный тип - переходов нет
		return NextStep{}, false
	case status == entities.OrderPending:
		return NextStep{Action: entities.ActionAdvanceToRunning}, true
	case status == entities.OrderRunning:
		return NextStep{Action: entities.ActionAdvanceToDone}, true
	default:
		return NextStep{}, false
	}
}

func NextPayment(payment entities.PaymentStatusType) (NextStep, bool) {
	if payment == entities.PaymentUnpaid {
		return NextStep{Action: entities.ActionAdvanceToPaid}, true
	}
	return NextStep{}, false
}

func (s NextStep) Label() string {
	switch s.Action {
	case entities.ActionConvertToConfirm:
		return "Confirm Order"
	case entities.ActionAdvanceToRunning:
		return "Mark Running"
	case entities.ActionAdvanceToDone:
		return "Mark Done"
	case entities.ActionAdvanceToPaid:
		return "Mark Paid"
	default:
		return ""
	}
}

// Modify собирает частичное обновление только с изменяемым полем.
func (s NextStep) Modify() entities.OrderModify {
	switch s.Action {
	case entities.ActionConvertToConfirm:
		t := entities.OrderConfirm
		return entities.OrderModify{Type: &t}
	case entities.ActionAdvanceToRunning:
		st := entities.OrderRunning
		return entities.OrderModify{Status: &st}
	case entities.ActionAdvanceToDone:
		st := entities.OrderDone
		return entities.OrderModify{Status: &st}
	case entities.ActionAdvanceToPaid:
		p := entities.PaymentPaid
		return entities.OrderModify{PaymentStatus: &p}
	default:
		return entities.OrderModify{}
	}
}

// Apply возвращает копию заказа с примененным шагом.
func (s NextStep) Apply(order entities.Order) entities.Order {
	return s.Modify().Apply(order)
}

// Transition описывает шаг как пару значений до/после для журнала.
func (s NextStep) Transition(order entities.Order) (from, to string) {
	next := s.Apply(order)
	switch s.Action {
	case entities.ActionConvertToConfirm:
		return order.Type.String(), next.Type.String()
	case entities.ActionAdvanceToPaid:
		return order.PaymentStatus.String(), next.PaymentStatus.String()
	default:
		return order.Status.String(), next.Status.String()
	}
}
