package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/google/uuid"
)

// CartRepo хранит корзины в памяти процесса. После перезапуска корзины теряются.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*usecase.CartSession
	now   func() time.Time
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[uuid.UUID]*usecase.CartSession),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create регистрирует новую пустую корзину.
func (r *CartRepo) Create(_ context.Context) (*usecase.CartSession, error) {
	now := r.now()
	s := &usecase.CartSession{
		ID:        uuid.New(),
		Cart:      domain.Cart{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.carts[s.ID] = s
	r.mu.Unlock()

	return clone(s), nil
}

// Get возвращает копию корзины.
func (r *CartRepo) Get(_ context.Context, id uuid.UUID) (*usecase.CartSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.carts[id]
	if !ok {
		return nil, e.ErrCartNotFound
	}

	return clone(s), nil
}

// Update применяет mutation под блокировкой, поэтому изменения одной корзины не теряются.
func (r *CartRepo) Update(ctx context.Context, id uuid.UUID, mutation usecase.CartMutation) (*usecase.CartSession, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.carts[id]
	if !ok {
		return nil, false, e.ErrCartNotFound
	}

	next, changed := mutation(s.Cart)
	if changed {
		s.Cart = next
		s.UpdatedAt = r.now()
	}

	return clone(s), changed, nil
}

// Len возвращает количество корзин.
func (r *CartRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.carts)
}

// clone копирует сессию. Позиции корзины не меняются на месте редьюсерами,
// поэтому достаточно скопировать заголовок среза.
func clone(s *usecase.CartSession) *usecase.CartSession {
	c := *s
	return &c
}
