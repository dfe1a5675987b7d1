// internal/infrastructure/storage/repository.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

// Repository stores JSON documents in a Store. Load never fails: missing,
// unreadable and corrupt values all fall back to the caller's default.
// Read and the writes report backend failures so callers can surface them.
type Repository struct {
	store Store
	log   logrus.FieldLogger
}

func NewRepository(store Store, log logrus.FieldLogger) *Repository {
	return &Repository{
		store: store,
		log:   log,
	}
}

// Load decodes the value stored under key. The bool is false when nothing
// usable was stored or the backend could not be read.
func Load[T any](ctx context.Context, r *Repository, key string) (T, bool) {
	value, ok, err := Read[T](ctx, r, key)
	if err != nil {
		r.log.WithError(err).WithField("key", key).
			Warn("storage read failed, continuing with defaults")
	}
	return value, ok
}

// Read is Load for callers that write back what they read. Missing and
// corrupt values give the zero value and false with a nil error; a corrupt
// value is deleted so the next read starts clean. A backend failure is
// returned as StorageUnavailable and the caller must not overwrite the key.
func Read[T any](ctx context.Context, r *Repository, key string) (T, bool, error) {
	var zero T

	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, apperror.StorageUnavailable(key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		r.log.WithError(apperror.CorruptState(key, err)).WithField("key", key).
			Error("discarding corrupt persisted value")
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			r.log.WithError(delErr).WithField("key", key).Warn("failed to discard corrupt value")
		}
		return zero, false, nil
	}

	return value, true, nil
}

// Save encodes value as JSON and writes it under key
func (r *Repository) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, raw); err != nil {
		appErr := apperror.StorageUnavailable(key, err)
		r.log.WithError(appErr).WithField("key", key).Error("storage write failed")
		return appErr
	}
	return nil
}

// Remove deletes key
func (r *Repository) Remove(ctx context.Context, key string) error {
	if err := r.store.Delete(ctx, key); err != nil {
		appErr := apperror.StorageUnavailable(key, err)
		r.log.WithError(appErr).WithField("key", key).Error("storage delete failed")
		return appErr
	}
	return nil
}
