package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProduct = domain.Product{ID: 1, Name: "IP-камера", Price: 12500}

func addOne(c domain.Cart) (domain.Cart, bool) {
	return domain.AddToCart(c, testProduct), true
}

func TestCartRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	r := NewCartRepo()

	s, err := r.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Empty(t, s.Cart.Lines)

	got, err := r.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 1, r.Len())

	_, err = r.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, e.ErrCartNotFound))
}

func TestCartRepo_Update(t *testing.T) {
	ctx := context.Background()
	r := NewCartRepo()
	s, err := r.Create(ctx)
	require.NoError(t, err)

	updated, changed, err := r.Update(ctx, s.ID, addOne)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, updated.Cart.Lines, 1)

	// Возвращённая копия не связана с хранилищем
	updated.Cart = domain.Cart{}
	got, err := r.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Cart.Lines, 1)

	unchanged, changed, err := r.Update(ctx, s.ID, func(c domain.Cart) (domain.Cart, bool) {
		return domain.ClearCart(c), false
	})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, unchanged.Cart.Lines, 1)
	assert.Equal(t, got.UpdatedAt, unchanged.UpdatedAt)

	_, _, err = r.Update(ctx, uuid.New(), addOne)
	assert.True(t, errors.Is(err, e.ErrCartNotFound))
}

func TestCartRepo_UpdateCanceledContext(t *testing.T) {
	r := NewCartRepo()
	s, err := r.Create(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = r.Update(ctx, s.ID, addOne)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCartRepo_ConcurrentUpdates(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	r := NewCartRepo()
	s, err := r.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := r.Update(ctx, s.ID, addOne)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, workers, got.Cart.Lines[0].Quantity)
}
