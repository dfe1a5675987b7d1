// internal/domain/order/service.go
package order

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
)

// DefaultHistoryLimit is the number of orders kept in the global history
const DefaultHistoryLimit = 100

// History is the device-wide order list, newest first
type History struct {
	repo  *storage.Repository
	limit int
	log   logrus.FieldLogger
	mu    sync.Mutex
}

// NewHistory creates a history keeping at most limit orders
func NewHistory(repo *storage.Repository, limit int, log logrus.FieldLogger) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		repo:  repo,
		limit: limit,
		log:   log,
	}
}

// Append records o as the newest order and drops the oldest beyond the limit.
// Nothing is written when the stored history cannot be read.
func (h *History) Append(ctx context.Context, o Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders, _, err := storage.Read[[]Order](ctx, h.repo, storage.KeyOrders)
	if err != nil {
		h.log.WithError(err).WithField("order_id", o.ID).Error("order history unreadable, not saving")
		return err
	}

	updated := make([]Order, 0, len(orders)+1)
	updated = append(updated, o)
	updated = append(updated, orders...)
	if len(updated) > h.limit {
		updated = updated[:h.limit]
	}

	if err := h.repo.Save(ctx, storage.KeyOrders, updated); err != nil {
		return err
	}

	h.log.WithFields(logrus.Fields{
		"order_id": o.ID,
		"orders":   len(updated),
	}).Debug("order appended to history")
	return nil
}

// List returns all recorded orders, newest first
func (h *History) List(ctx context.Context) []Order {
	orders, ok := storage.Load[[]Order](ctx, h.repo, storage.KeyOrders)
	if !ok || orders == nil {
		return []Order{}
	}
	return orders
}

// Find looks up an order by id
func (h *History) Find(ctx context.Context, id string) (Order, bool) {
	for _, o := range h.List(ctx) {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
