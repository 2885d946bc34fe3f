package policy

import (
	"ordertracker/internal/entities"
	"ordertracker/internal/service/lifecycle"
)

type Action string

const (
	ActionAdvanceStatus  Action = "advanceStatus"
	ActionAdvancePayment Action = "advancePayment"
	ActionEdit           Action = "edit"
	ActionDelete         Action = "delete"
	ActionCreate         Action = "create"
)

type Actions struct {
	AdvanceStatus  bool
	AdvancePayment bool
	Edit           bool
	Delete         bool
	Create         bool
}

func (a Actions) List() []Action {
	list := make([]Action, 0, 5)
	if a.AdvanceStatus {
		list = append(list, ActionAdvanceStatus)
	}
	if a.AdvancePayment {
		list = append(list, ActionAdvancePayment)
	}
	if a.Edit {
		list = append(list, ActionEdit)
	}
	if a.Delete {
		list = append(list, ActionDelete)
	}
	if a.Create {
		list = append(list, ActionCreate)
	}
	return list
}

// RoleAllows - ролевая часть таблицы без учета состояния заказа.
func RoleAllows(role entities.Role, action Action) bool {
	switch action {
	case ActionAdvanceStatus:
		return role.IsValid()
	case ActionAdvancePayment, ActionEdit, ActionDelete, ActionCreate:
		return role == entities.RoleAdmin
	default:
		return false
	}
}

// Permitted возвращает набор действий роли над заказом. Неизвестная роль не получает ничего.
func Permitted(role entities.Role, order entities.Order) Actions {
	_, hasNextStatus := lifecycle.NextStatus(order.Status, order.Type)
	_, hasNextPayment := lifecycle.NextPayment(order.PaymentStatus)

	return Actions{
		AdvanceStatus:  RoleAllows(role, ActionAdvanceStatus) && hasNextStatus,
		AdvancePayment: RoleAllows(role, ActionAdvancePayment) && hasNextPayment,
		Edit:           RoleAllows(role, ActionEdit),
		Delete:         RoleAllows(role, ActionDelete),
		Create:         RoleAllows(role, ActionCreate),
	}
}

func Allowed(role entities.Role, order entities.Order, action Action) bool {
	actions := Permitted(role, order)
	switch action {
	case ActionAdvanceStatus:
		return actions.AdvanceStatus
	case ActionAdvancePayment:
		return actions.AdvancePayment
	case ActionEdit:
		return actions.Edit
	case ActionDelete:
		return actions.Delete
	case ActionCreate:
		return actions.Create
	default:
		return false
	}
}

func CanCreate(role entities.Role) bool {
	return RoleAllows(role, ActionCreate)
}
