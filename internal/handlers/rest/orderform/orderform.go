// Package orderform разбирает multipart-форму заказа в сырые черновики
// сервиса заказов. Проверка значений остается за сервисом.
package orderform

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"ordertracker/internal/entities"
	"ordertracker/internal/handlers/rest/respond"
)

const (
	// MaxMemory - сколько формы держим в памяти, остальное уходит во временные файлы.
	MaxMemory = 10 << 20
	// MaxAttachmentSize - верхняя граница для прикрепленного файла.
	MaxAttachmentSize = 10 << 20

	FieldName          = "name"
	FieldNumber        = "number"
	FieldWork          = "work"
	FieldStatus        = "status"
	FieldType          = "type"
	FieldPaymentStatus = "paymentStatus"
	FieldAddDate       = "addDate"
	FieldDeliveryDate  = "deliveryDate"
	FieldFile          = "file"
)

var ErrAttachmentTooLarge = errors.New("attachment too large")

// ParseDraft читает форму создания: отсутствующие поля становятся пустыми строками.
func ParseDraft(r *http.Request) (entities.OrderDraft, *entities.Upload, error) {
	if err := parse(r); err != nil {
		return entities.OrderDraft{}, nil, err
	}

	draft := entities.OrderDraft{
		Name:          r.PostFormValue(FieldName),
		Number:        r.PostFormValue(FieldNumber),
		Work:          r.PostFormValue(FieldWork),
		Status:        r.PostFormValue(FieldStatus),
		Type:          r.PostFormValue(FieldType),
		PaymentStatus: r.PostFormValue(FieldPaymentStatus),
		AddDate:       r.PostFormValue(FieldAddDate),
		DeliveryDate:  r.PostFormValue(FieldDeliveryDate),
	}

	upload, err := readUpload(r)
	if err != nil {
		return entities.OrderDraft{}, nil, err
	}
	return draft, upload, nil
}

// ParsePatch читает форму редактирования. Поле попадает в патч,
// только если оно присутствует в форме.
func ParsePatch(r *http.Request) (entities.OrderPatch, error) {
	if err := parse(r); err != nil {
		return entities.OrderPatch{}, err
	}

	upload, err := readUpload(r)
	if err != nil {
		return entities.OrderPatch{}, err
	}

	return entities.OrderPatch{
		Name:          optional(r, FieldName),
		Number:        optional(r, FieldNumber),
		Work:          optional(r, FieldWork),
		Status:        optional(r, FieldStatus),
		Type:          optional(r, FieldType),
		PaymentStatus: optional(r, FieldPaymentStatus),
		AddDate:       optional(r, FieldAddDate),
		DeliveryDate:  optional(r, FieldDeliveryDate),
		Attachment:    upload,
	}, nil
}

func parse(r *http.Request) error {
	if err := r.ParseMultipartForm(MaxMemory); err != nil {
		return fmt.Errorf("%w: parse multipart form: %w", respond.ErrBadRequest, err)
	}
	return nil
}

func optional(r *http.Request, field string) *string {
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]
	return &value
}

func readUpload(r *http.Request) (*entities.Upload, error) {
	file, header, err := r.FormFile(FieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", respond.ErrBadRequest, FieldFile, err)
	}
	defer file.Close()

	if header.Size > MaxAttachmentSize {
		return nil, fmt.Errorf("%w: %w", respond.ErrBadRequest, ErrAttachmentTooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", respond.ErrBadRequest, FieldFile, err)
	}

	return &entities.Upload{
		Filename:    header.Filename,
		ContentType: contentType(header),
		Data:        data,
	}, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
