package healthcheck_head

import (
	"net/http"
	"sync/atomic"
	"time"
)

// CollectionProbe - локальная коллекция заказов. Нулевое время означает,
// что первая загрузка из хранилища еще не прошла. nil отключает проверку
// (воркер без коллекции).
type CollectionProbe interface {
	LoadedAt() time.Time
}

type Option func(*Handler)

// WithMaxStaleness переводит сервис в 503, если коллекция не обновлялась
// дольше maxAge. Ноль отключает проверку.
func WithMaxStaleness(maxAge time.Duration, now func() time.Time) Option {
	return func(h *Handler) {
		h.maxStaleness = maxAge
		h.now = now
	}
}

type Handler struct {
	isShuttingDown *atomic.Bool
	collection     CollectionProbe
	maxStaleness   time.Duration
	now            func() time.Time
}

func New(isShuttingDown *atomic.Bool, collection CollectionProbe, opts ...Option) *Handler {
	h := &Handler{
		isShuttingDown: isShuttingDown,
		collection:     collection,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP: 204 когда сервис принимает трафик, 503 во время остановки,
// до первой загрузки коллекции или когда она устарела.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	if h.collection == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	loadedAt := h.collection.LoadedAt()
	if loadedAt.IsZero() {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	if h.maxStaleness > 0 && h.now().Sub(loadedAt) > h.maxStaleness {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
