package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"ordertracker/pkg/retrier"
)

// Retrier - экспоненциальные повторы поверх cenkalti/backoff.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config.WithDefaults()}
}

// ExecuteWithContext повторяет fn, пока она не вернет nil, ошибку,
// которую ShouldRetry считает постоянной, или пока не кончится
// MaxElapsedTime либо ctx. Возвращается последняя ошибка fn.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.config.OnRetry != nil {
		notify = func(err error, next time.Duration) {
			r.config.OnRetry(err, next)
		}
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
