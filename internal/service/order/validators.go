package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"ordertracker/internal/entities"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidStatus(s string) bool {
	return slices.Contains(entities.OrderStatuses, entities.OrderStatusType(s))
}

func isValidType(s string) bool {
	return slices.Contains(entities.OrderTypes, entities.OrderType(s))
}

func isValidPaymentStatus(s string) bool {
	return slices.Contains(entities.PaymentStatuses, entities.PaymentStatusType(s))
}

func isValidOrderID(id string) bool {
	return !isBlank(id)
}

// parseDate принимает YYYY-MM-DD в зоне loc либо RFC 3339.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

func validateUpload(u *entities.Upload) bool {
	return u == nil || (!isBlank(u.Filename) && len(u.Data) > 0)
}

// ValidateDraft проверяет черновик формы создания. Пустые статус, тип, оплата
// и дата добавления получают значения по умолчанию, неизвестные значения
// перечислений отклоняются. Порядок дат не проверяется.
func ValidateDraft(draft entities.OrderDraft, now time.Time) (entities.OrderCreate, error) {
	verr := &ValidationError{}
	loc := now.Location()

	payload := entities.OrderCreate{
		Name:          strings.TrimSpace(draft.Name),
		Number:        strings.TrimSpace(draft.Number),
		Work:          strings.TrimSpace(draft.Work),
		Status:        entities.DefaultOrderStatus,
		Type:          entities.DefaultOrderType,
		PaymentStatus: entities.DefaultPaymentStatus,
		AddDate:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc),
	}

	if payload.Name == "" {
		verr.add("name", ErrRequiredField)
	}
	if payload.Number == "" {
		verr.add("number", ErrRequiredField)
	}
	if payload.Work == "" {
		verr.add("work", ErrRequiredField)
	}

	if isBlank(draft.DeliveryDate) {
		verr.add("deliveryDate", ErrRequiredField)
	} else if d, err := parseDate(draft.DeliveryDate, loc); err != nil {
		verr.add("deliveryDate", err)
	} else {
		payload.DeliveryDate = d
	}

	if !isBlank(draft.AddDate) {
		if d, err := parseDate(draft.AddDate, loc); err != nil {
			verr.add("addDate", err)
		} else {
			payload.AddDate = d
		}
	}

	if draft.Status != "" {
		if isValidStatus(draft.Status) {
			payload.Status = entities.OrderStatusType(draft.Status)
		} else {
			verr.add("status", fmt.Errorf("%q: %w", draft.Status, ErrUnknownEnumValue))
		}
	}
	if draft.Type != "" {
		if isValidType(draft.Type) {
			payload.Type = entities.OrderType(draft.Type)
		} else {
			verr.add("type", fmt.Errorf("%q: %w", draft.Type, ErrUnknownEnumValue))
		}
	}
	if draft.PaymentStatus != "" {
		if isValidPaymentStatus(draft.PaymentStatus) {
			payload.PaymentStatus = entities.PaymentStatusType(draft.PaymentStatus)
		} else {
			verr.add("paymentStatus", fmt.Errorf("%q: %w", draft.PaymentStatus, ErrUnknownEnumValue))
		}
	}

	if err := verr.orNil(); err != nil {
		return entities.OrderCreate{}, err
	}
	return payload, nil
}

// ValidatePatch превращает сырой частичный ввод в OrderModify, проверяя
// только присланные поля.
func ValidatePatch(patch entities.OrderPatch, loc *time.Location) (entities.OrderModify, error) {
	verr := &ValidationError{}
	var modify entities.OrderModify

	text := func(field string, value *string) *string {
		if value == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" {
			verr.add(field, ErrRequiredField)
			return nil
		}
		return &trimmed
	}
	date := func(field string, value *string) *time.Time {
		if value == nil {
			return nil
		}
		if isBlank(*value) {
			verr.add(field, ErrRequiredField)
			return nil
		}
		d, err := parseDate(*value, loc)
		if err != nil {
			verr.add(field, err)
			return nil
		}
		return &d
	}

	modify.Name = text("name", patch.Name)
	modify.Number = text("number", patch.Number)
	modify.Work = text("work", patch.Work)
	modify.AddDate = date("addDate", patch.AddDate)
	modify.DeliveryDate = date("deliveryDate", patch.DeliveryDate)

	if patch.Status != nil {
		if isValidStatus(*patch.Status) {
			s := entities.OrderStatusType(*patch.Status)
			modify.Status = &s
		} else {
			verr.add("status", fmt.Errorf("%q: %w", *patch.Status, ErrUnknownEnumValue))
		}
	}
	if patch.Type != nil {
		if isValidType(*patch.Type) {
			t := entities.OrderType(*patch.Type)
			modify.Type = &t
		} else {
			verr.add("type", fmt.Errorf("%q: %w", *patch.Type, ErrUnknownEnumValue))
		}
	}
	if patch.PaymentStatus != nil {
		if isValidPaymentStatus(*patch.PaymentStatus) {
			p := entities.PaymentStatusType(*patch.PaymentStatus)
			modify.PaymentStatus = &p
		} else {
			verr.add("paymentStatus", fmt.Errorf("%q: %w", *patch.PaymentStatus, ErrUnknownEnumValue))
		}
	}

	if patch.Attachment != nil {
		if validateUpload(patch.Attachment) {
			modify.Attachment = patch.Attachment
		} else {
			verr.add("file", ErrInvalidAttachment)
		}
	}

	if err := verr.orNil(); err != nil {
		return entities.OrderModify{}, err
	}
	if modify.IsEmpty() {
		verr.add("body", ErrEmptyModify)
		return entities.OrderModify{}, verr
	}
	return modify, nil
}
