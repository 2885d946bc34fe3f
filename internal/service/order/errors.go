package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrRequiredField     = errors.New("required field")
	ErrUnknownEnumValue  = errors.New("unknown enum value")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrEmptyModify       = errors.New("no fields to update")

	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrTransitionUnavailable = errors.New("transition unavailable")
	ErrForbidden             = errors.New("action forbidden for role")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrRepository            = errors.New("order repository failure")
)

type FieldViolation struct {
	Field string
	Err   error
}

// ValidationError собирает все нарушения сразу, а не первое.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) add(field string, err error) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Err: err})
}

func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %v", v.Field, v.Err))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v.Err)
	}
	return errs
}

// Fields - поле -> текст ошибки, для ответа клиенту.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		fields[v.Field] = v.Err.Error()
	}
	return fields
}

func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		names = append(names, v.Field)
	}
	sort.Strings(names)
	return names
}
