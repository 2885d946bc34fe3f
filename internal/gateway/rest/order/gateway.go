package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ordertracker/internal/entities"
	"ordertracker/internal/service/order"
	retrierconfig "ordertracker/pkg/retrier"
	"ordertracker/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-store"

	// тело ошибки обрезаем, чтобы не тащить html-страницы в логи
	maxErrorBody = 512
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type OrderGateway struct {
	client   client
	retrier  retrier
	baseURL  string
	location *time.Location
}

type Option func(*OrderGateway)

// WithLocation задает зону, в которой даты хранилища становятся календарными днями.
func WithLocation(loc *time.Location) Option {
	return func(g *OrderGateway) {
		if loc != nil {
			g.location = loc
		}
	}
}

func New(client client, baseURL string, opts ...Option) *OrderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	g := &OrderGateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		baseURL:  strings.TrimRight(baseURL, "/"),
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *OrderGateway) Create(ctx context.Context, payload entities.OrderCreate, attachment *entities.Upload) (*entities.Order, error) {
	body, contentType, err := encodeForm(formFieldsCreate(payload), attachment)
	if err != nil {
		return nil, fmt.Errorf("gateway order, create: %w", err)
	}

	var dto *OrderDTO
	err = g.executeOnce(ctx, "Create", func(ctx context.Context) error {
		return g.do(ctx, http.MethodPost, "/orders", nil, body, contentType, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, create: %w", err)
	}

	return toDomain(dto, g.location), nil
}

func (g *OrderGateway) Update(ctx context.Context, id string, modify entities.OrderModify) (*entities.Order, error) {
	body, contentType, err := encodeForm(formFieldsModify(modify), modify.Attachment)
	if err != nil {
		return nil, fmt.Errorf("gateway order, update %s: %w", id, err)
	}

	var dto *OrderDTO
	err = g.executeOnce(ctx, "Update", func(ctx context.Context) error {
		return g.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), nil, body, contentType, &dto)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, update %s: %w", id, err)
	}

	return toDomain(dto, g.location), nil
}

func (g *OrderGateway) Delete(ctx context.Context, id string) error {
	var resp deleteResponse
	err := g.executeOnce(ctx, "Delete", func(ctx context.Context) error {
		return g.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil, "", &resp)
	})
	if err != nil {
		return fmt.Errorf("gateway order, delete %s: %w", id, err)
	}
	return nil
}

// Search - единственная идемпотентная операция, поэтому только она ретраится.
func (g *OrderGateway) Search(ctx context.Context, query entities.SearchQuery) ([]entities.Order, error) {
	params := url.Values{}
	for key, value := range query.Params() {
		params.Set(key, value)
	}

	var dtos []OrderDTO
	err := g.executeWithMetrics(ctx, "Search", func(ctx context.Context) error {
		dtos = nil
		return g.do(ctx, http.MethodGet, "/orders/search", params, nil, "", &dtos)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order, search: %w", err)
	}

	return toDomainList(dtos, g.location), nil
}

func (g *OrderGateway) do(
	ctx context.Context,
	method, path string,
	params url.Values,
	body []byte,
	contentType string,
	out any,
) error {
	target := g.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", order.ErrRepository, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", order.ErrRepository, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", order.ErrRepository, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   truncate(string(raw), maxErrorBody),
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", order.ErrOrderNotFound, statusErr)
		}
		return fmt.Errorf("%w: %w", order.ErrRepository, statusErr)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", order.ErrRepository, method, path, err)
	}
	return nil
}

func encodeForm(fields [][2]string, attachment *entities.Upload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", field[0], err)
		}
	}

	if attachment != nil {
		part, err := w.CreateFormFile("file", attachment.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return nil, "", fmt.Errorf("write form file: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	// сетевые ошибки транспорта
	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr)
}

func (g *OrderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

// executeOnce - мутации не повторяются: хранилище не идемпотентно.
func (g *OrderGateway) executeOnce(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode(err)).Observe(time.Since(start).Seconds())
	return err
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "TRANSPORT"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
