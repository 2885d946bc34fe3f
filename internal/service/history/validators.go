package history

import (
	"fmt"
	"slices"
	"strings"

	"ordertracker/internal/entities"
)

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateEvent(e entities.LifecycleEvent) error {
	switch {
	case strings.TrimSpace(e.EventID) == "":
		return fmt.Errorf("%w: empty event id", ErrInvalidEvent)
	case !isValidOrderID(e.OrderID):
		return fmt.Errorf("%w: empty order id", ErrInvalidEvent)
	case !slices.Contains(entities.LifecycleActions, e.Action):
		return fmt.Errorf("%w: unknown action %q", ErrInvalidEvent, e.Action)
	case e.OccurredAt.IsZero():
		return fmt.Errorf("%w: missing occurredAt", ErrInvalidEvent)
	}
	return nil
}
