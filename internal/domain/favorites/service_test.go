package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

func newService(store storage.Store) *Service {
	log, _ := test.NewNullLogger()
	return NewService(storage.NewRepository(store, log), log)
}

func TestToggleAddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	s := newService(storage.NewMemoryStore())

	fav, err := s.Toggle(ctx, "Jollof Rice")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, s.IsFavorite(ctx, "Jollof Rice"))

	_, err = s.Toggle(ctx, "Suya Platter")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jollof Rice", "Suya Platter"}, s.List(ctx))

	fav, err = s.Toggle(ctx, "Jollof Rice")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Equal(t, []string{"Suya Platter"}, s.List(ctx))
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	_, err := newService(store).Toggle(ctx, "Jollof Rice")
	require.NoError(t, err)

	assert.True(t, newService(store).IsFavorite(ctx, "Jollof Rice"))
}

func TestToggleRejectsBlankName(t *testing.T) {
	_, err := newService(storage.NewMemoryStore()).Toggle(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrItemName)
}

func TestCorruptListBecomesEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyFavorites, []byte("{not json")))

	s := newService(store)
	assert.Empty(t, s.List(ctx))

	_, err := store.Get(ctx, storage.KeyFavorites)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

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

func TestToggleKeepsListWhenUnreadable(t *testing.T) {
	ctx := context.Background()
	store := &unreadableStore{MemoryStore: storage.NewMemoryStore()}
	s := newService(store)
	_, err := s.Toggle(ctx, "Jollof Rice")
	require.NoError(t, err)

	store.failReads = true
	_, err = s.Toggle(ctx, "Suya Platter")
	assert.Equal(t, apperror.KindStorageUnavailable, apperror.KindOf(err))

	store.failReads = false
	assert.Equal(t, []string{"Jollof Rice"}, s.List(ctx))
}
