// Package retrier описывает политику повторов. Реализация лежит
// в backoff_adapter, потребители зависят только от интерфейса.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается перед каждой паузой между попытками.
type OnRetryFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     OnRetryFunc
}

const (
	defaultMaxInterval    = 30 * time.Second
	defaultMaxElapsedTime = 2 * time.Minute
	defaultRandomization  = 0.5
	defaultMultiplier     = 2
)

// Startup - политика подключения к инфраструктуре при старте процесса:
// экспоненциальная пауза от initial до 30s, не дольше двух минут суммарно.
func Startup(initial time.Duration) Config {
	return Config{
		InitialInterval: initial,
		MaxInterval:     defaultMaxInterval,
		MaxElapsedTime:  defaultMaxElapsedTime,
		Randomization:   defaultRandomization,
		Multiplier:      defaultMultiplier,
	}
}

// WithDefaults заполняет нулевые поля значениями Startup.
// Нулевой InitialInterval становится одной секундой.
func (c Config) WithDefaults() Config {
	if c.InitialInterval <= 0 {
		c.InitialInterval = time.Second
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = defaultMaxInterval
	}
	if c.MaxElapsedTime <= 0 {
		c.MaxElapsedTime = defaultMaxElapsedTime
	}
	if c.Multiplier <= 0 {
		c.Multiplier = defaultMultiplier
	}
	return c
}
