// internal/infrastructure/events/publisher.go
package events

import (
	"context"
	"time"

	"github.com/your-org/foodhub-storefront/internal/domain/order"
)

const TypeOrderCompleted = "order.completed"

// OrderCompleted is emitted once a payment has been taken and the order recorded
type OrderCompleted struct {
	Type         string      `json:"type"`
	Order        order.Order `json:"order"`
	Customer     string      `json:"customer,omitempty"`
	PointsEarned int64       `json:"points_earned"`
	OccurredAt   time.Time   `json:"occurred_at"`
}

// NewOrderCompleted builds the event for o
func NewOrderCompleted(o order.Order, customer string, pointsEarned int64, at time.Time) OrderCompleted {
	return OrderCompleted{
		Type:         TypeOrderCompleted,
		Order:        o,
		Customer:     customer,
		PointsEarned: pointsEarned,
		OccurredAt:   at.UTC(),
	}
}

// Publisher delivers storefront events
type Publisher interface {
	Publish(ctx context.Context, event OrderCompleted) error
	Close() error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderCompleted) error { return nil }

func (NopPublisher) Close() error { return nil }
