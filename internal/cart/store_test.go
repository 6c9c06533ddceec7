package cart

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestCartAddAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 10, 2))
	require.NoError(t, s.Add(ctx, 1, 20, 1))

	// adicionar de novo soma na quantidade existente
	require.NoError(t, s.Add(ctx, 1, 10, 3))

	items, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byProduct := map[uint]int{}
	for _, it := range items {
		byProduct[it.ProductID] = it.Quantity
	}
	assert.Equal(t, 5, byProduct[10])
	assert.Equal(t, 1, byProduct[20])
}

func TestCartIsolatedPerUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 10, 1))
	require.NoError(t, s.Add(ctx, 2, 10, 4))

	mine, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].Quantity)

	other, err := s.Get(ctx, 2)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 4, other[0].Quantity)
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Add(ctx, 1, 10, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	err = s.Add(ctx, 1, 10, -3)
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
}

func TestCartSetQuantity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 10, 2))
	require.NoError(t, s.SetQuantity(ctx, 1, 10, 7))

	items, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)

	// zero remove o item
	require.NoError(t, s.SetQuantity(ctx, 1, 10, 0))
	items, err = s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = s.SetQuantity(ctx, 1, 10, -1)
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
}

func TestCartRemoveAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, 10, 1))
	require.NoError(t, s.Add(ctx, 1, 20, 1))

	require.NoError(t, s.Remove(ctx, 1, 10))
	items, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(20), items[0].ProductID)

	require.NoError(t, s.Clear(ctx, 1))
	items, err = s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartEmptyByDefault(t *testing.T) {
	s := newTestStore(t)

	items, err := s.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, items)
}
