// Package token_bucket - лимитер входящих HTTP-запросов. Allow либо
// забирает токен, либо сообщает, что запрос надо отклонить.
package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

// NewTokenBucket создает полное ведро: первые capacity запросов проходят сразу,
// дальше по refillRate токенов в секунду.
func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

// NewTokenBucketWithClock - то же с внешними часами, для тестов.
func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return newTokenBucket(capacity, refillRate, now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// refill копит дробные токены, поэтому частые вызовы не теряют пополнение.
func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
