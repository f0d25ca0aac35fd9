package jitter

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Exponential(t *testing.T) {
	b := NewBackoff(100*time.Millisecond, time.Second, 0, nil)

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "first attempt", attempt: 0, want: 100 * time.Millisecond},
		{name: "doubles", attempt: 2, want: 400 * time.Millisecond},
		{name: "capped", attempt: 10, want: time.Second},
		{name: "no overflow on large attempts", attempt: 200, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Delay(tt.attempt))
		})
	}
}

func TestBackoff_JitterBounds(t *testing.T) {
	b := NewBackoff(100*time.Millisecond, time.Second, DefaultJitter, nil)

	for i := 0; i < 100; i++ {
		d := b.Delay(0)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}
}

func TestBackoff_SeededIsDeterministic(t *testing.T) {
	a := NewBackoff(time.Second, time.Minute, DefaultJitter, rand.New(rand.NewSource(42)))
	b := NewBackoff(time.Second, time.Minute, DefaultJitter, rand.New(rand.NewSource(42)))

	for attempt := 0; attempt < 5; attempt++ {
		assert.Equal(t, a.Delay(attempt), b.Delay(attempt))
	}
}

func TestBackoff_Concurrent(t *testing.T) {
	b := NewBackoff(time.Millisecond, time.Second, DefaultJitter, rand.New(rand.NewSource(1)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.Delay(j % 4)
			}
		}()
	}
	wg.Wait()
}
