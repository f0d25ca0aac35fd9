package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/jitter"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

const (
	defaultQueueSize = 256
	retryBaseDelay   = 100 * time.Millisecond
	retryMaxDelay    = 5 * time.Second
	sendTimeout      = 10 * time.Second
)

var errDispatcherStopped = errors.New("event dispatcher stopped")

// Dispatcher асинхронно отправляет события корзины через MessageProducer.
// Publish не блокируется: при переполненной очереди событие отбрасывается.
type Dispatcher struct {
	producer   usecase.MessageProducer
	logger     logger.Logger
	queue      chan *usecase.CartEvent
	maxRetries int
	backoff    *jitter.Backoff

	mu      sync.RWMutex
	stopped bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewDispatcher(producer usecase.MessageProducer, logger logger.Logger, queueSize, maxRetries int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Dispatcher{
		producer:   producer,
		logger:     logger,
		queue:      make(chan *usecase.CartEvent, queueSize),
		maxRetries: maxRetries,
		backoff:    jitter.NewBackoff(retryBaseDelay, retryMaxDelay, jitter.DefaultJitter, nil),
		stop:       make(chan struct{}),
	}
}

// WithBackoff заменяет политику задержек между повторами. Вызывается до Start.
func (d *Dispatcher) WithBackoff(b *jitter.Backoff) *Dispatcher {
	d.backoff = b
	return d
}

// Publish ставит событие в очередь отправки.
func (d *Dispatcher) Publish(event *usecase.CartEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return errDispatcherStopped
	}

	select {
	case d.queue <- event:
		return nil
	default:
		return e.ErrEventQueueFull
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ctx)
	}()
}

// Stop прекращает приём событий и дожидается отправки уже поставленных в очередь.
// Оставшиеся события отправляются без повторов, пока не истечёт ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.stop)
	d.mu.Unlock()

	d.wg.Wait()
	return d.drain(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case ev := <-d.queue:
			d.send(ctx, ev)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) error {
	for {
		select {
		case ev := <-d.queue:
			if err := d.write(ctx, ev); err != nil {
				d.logger.Warnf("Dropping cart event %s on shutdown: %v", ev.EventID, err)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
		default:
			return nil
		}
	}
}

// send отправляет событие с ограниченным числом повторов для временных ошибок брокера.
func (d *Dispatcher) send(ctx context.Context, ev *usecase.CartEvent) {
	for attempt := 0; ; attempt++ {
		err := d.write(ctx, ev)
		if err == nil {
			return
		}

		if !isRetryableError(err) || attempt >= d.maxRetries {
			d.logger.Warnf("Dropping cart event %s (%s) after %d attempt(s): %v", ev.EventID, ev.EventType, attempt+1, err)
			return
		}

		d.logger.Debugf("Temporary Kafka failure, retrying cart event %s: %v", ev.EventID, err)
		select {
		case <-time.After(d.backoff.Delay(attempt)):
		case <-ctx.Done():
			return
		case <-d.stop:
			// событие вернётся в очередь и уйдёт при drain
			select {
			case d.queue <- ev:
			default:
			}
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, ev *usecase.CartEvent) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	return d.producer.WriteMessage(ctx, ev)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"leader not available",
		"not leader for partition",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
