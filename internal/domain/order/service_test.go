package order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

func newHistory(t *testing.T, limit int) (*History, *storage.MemoryStore) {
	t.Helper()
	log, _ := test.NewNullLogger()
	store := storage.NewMemoryStore()
	return NewHistory(storage.NewRepository(store, log), limit, log), store
}

func sampleOrder(id string) Order {
	return Order{
		ID:       id,
		Date:     FormatDate(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)),
		Items:    []cart.LineItem{{Name: "Pizza", UnitPrice: decimal.NewFromInt(5000), Quantity: 2}},
		Subtotal: decimal.NewFromInt(10000),
		Tax:      decimal.NewFromInt(1000),
		Total:    decimal.NewFromInt(11000),
		Discount: decimal.Zero,
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	h, _ := newHistory(t, 100)

	assert.Empty(t, h.List(ctx))

	require.NoError(t, h.Append(ctx, sampleOrder("A")))
	require.NoError(t, h.Append(ctx, sampleOrder("B")))

	orders := h.List(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, "B", orders[0].ID)
	assert.Equal(t, "A", orders[1].ID)

	found, ok := h.Find(ctx, "A")
	require.True(t, ok)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(11000)))

	_, ok = h.Find(ctx, "Z")
	assert.False(t, ok)
}

func TestHistoryCapsAtLimit(t *testing.T) {
	ctx := context.Background()
	h, _ := newHistory(t, 100)

	for i := 0; i < 101; i++ {
		require.NoError(t, h.Append(ctx, sampleOrder(fmt.Sprintf("O%03d", i))))
	}

	orders := h.List(ctx)
	require.Len(t, orders, 100)
	assert.Equal(t, "O100", orders[0].ID)
	assert.Equal(t, "O001", orders[99].ID, "the oldest order is dropped")
}

func TestHistoryPersistedFormat(t *testing.T) {
	ctx := context.Background()
	h, store := newHistory(t, 10)
	require.NoError(t, h.Append(ctx, sampleOrder("A")))

	raw, err := store.Get(ctx, storage.KeyOrders)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "A",
		"date": "2026-10-18T12:00:00Z",
		"items": [{"name": "Pizza", "price": 5000, "quantity": 2}],
		"subtotal": 10000,
		"tax": 1000,
		"total": 11000,
		"discount": 0
	}]`, string(raw))
}

func TestHistoryReadsLegacyOrders(t *testing.T) {
	ctx := context.Background()
	h, store := newHistory(t, 10)
	legacy := `[{"id":"K3J9Z0QWE","date":"10/18/2026, 12:00:00 PM","items":[{"name":"Coca Cola","price":800,"quantity":1}],"subtotal":800,"tax":80,"total":880}]`
	require.NoError(t, store.Set(ctx, storage.KeyOrders, []byte(legacy)))

	orders := h.List(ctx)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Tax.Equal(decimal.NewFromInt(80)))
	_, ok := orders[0].PlacedAt()
	assert.False(t, ok)
}

func TestHistoryCorruptValueStartsOver(t *testing.T) {
	ctx := context.Background()
	h, store := newHistory(t, 10)
	require.NoError(t, store.Set(ctx, storage.KeyOrders, []byte(`oops`)))

	assert.Empty(t, h.List(ctx))
	require.NoError(t, h.Append(ctx, sampleOrder("A")))
	assert.Len(t, h.List(ctx), 1)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[0-9A-F]{12}$`, a)
}

func TestPaymentMethods(t *testing.T) {
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethod("cash").IsValid())
	assert.False(t, PaymentMethod("crypto").IsValid())
	assert.Len(t, PaymentMethods(), 3)
}

// unreadableStore fails reads while failReads is set; writes still land
type unreadableStore struct {
	*storage.MemoryStore
	failReads bool
}

func (u *unreadableStore) Get(ctx context.Context, key string) ([]byte, error) {
	if u.failReads {
		return nil, errors.New("connection reset")
	}
	return u.MemoryStore.Get(ctx, key)
}

func TestHistoryAppendKeepsOrdersWhenUnreadable(t *testing.T) {
	ctx := context.Background()
	log, _ := test.NewNullLogger()
	store := &unreadableStore{MemoryStore: storage.NewMemoryStore()}
	h := NewHistory(storage.NewRepository(store, log), 10, log)
	require.NoError(t, h.Append(ctx, sampleOrder("A")))
	require.NoError(t, h.Append(ctx, sampleOrder("B")))

	store.failReads = true
	err := h.Append(ctx, sampleOrder("C"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindStorageUnavailable, apperror.KindOf(err))

	store.failReads = false
	orders := h.List(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, "B", orders[0].ID)
}
