package entities

import "time"

type LifecycleAction string

const (
	ActionConvertToConfirm LifecycleAction = "convert_to_confirm"
	ActionAdvanceToRunning LifecycleAction = "advance_to_running"
	ActionAdvanceToDone    LifecycleAction = "advance_to_done"
	ActionAdvanceToPaid    LifecycleAction = "advance_to_paid"
)

var LifecycleActions = []LifecycleAction{
	ActionConvertToConfirm,
	ActionAdvanceToRunning,
	ActionAdvanceToDone,
	ActionAdvanceToPaid,
}

func (a LifecycleAction) String() string {
	return string(a)
}

// LifecycleEvent публикуется после успешно сохраненного перехода.
type LifecycleEvent struct {
	EventID    string
	OrderID    string
	Action     LifecycleAction
	From       string
	To         string
	Actor      string
	OccurredAt time.Time
}
