// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when a key has never been written or was deleted
var ErrNotFound = errors.New("storage: key not found")

// Keys of the persisted storefront state. The names and the JSON shape of
// their values are shared with existing browser profiles and must not change.
const (
	KeyUsers       = "foodhub-users"
	KeyCurrentUser = "foodhub-current-user"
	KeyFavorites   = "foodhub-favorites"
	KeyOrders      = "foodhub-orders"

	// KeyPendingOTP lives in the session-scoped store only and holds the
	// bare code as a JSON string. Issue time and attempts go under KeyPendingOTPMeta.
	KeyPendingOTP     = "pending-otp"
	KeyPendingOTPMeta = "pending-otp-meta"
)

// Store is a string-keyed byte store. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
