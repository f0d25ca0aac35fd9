// Package jitter вычисляет задержки повторов с экспоненциальным ростом и случайной добавкой,
// чтобы повторы разных клиентов не совпадали по времени.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — доля задержки, добавляемая случайно (до 50%).
const DefaultJitter = 0.5

// Backoff — политика задержек между повторами: Base·2^attempt, не больше Max,
// плюс случайная добавка до Factor·задержки. Безопасна для конкурентного использования.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBackoff создаёт политику. При rng == nil генератор инициализируется текущим временем.
func NewBackoff(base, max time.Duration, factor float64, rng *rand.Rand) *Backoff {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Backoff{
		Base:   base,
		Max:    max,
		Factor: factor,
		rng:    rng,
	}
}

// Delay возвращает задержку перед повтором с номером attempt (с нуля).
// Результат лежит в [d, d*(1+Factor)], где d = min(Base·2^attempt, Max).
func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.exponential(attempt)
	if b.Factor <= 0 {
		return d
	}

	b.mu.Lock()
	r := b.rng.Float64()
	b.mu.Unlock()

	return d + time.Duration(r*b.Factor*float64(d))
}

func (b *Backoff) exponential(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		if d >= b.Max/2 {
			return b.Max
		}
		d *= 2
	}
	return min(d, b.Max)
}
