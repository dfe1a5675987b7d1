// internal/domain/order/entity.go
package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
)

// PaymentMethod is how the customer paid
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCash   PaymentMethod = "cash"
)

// PaymentMethods lists the accepted methods in display order
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCard, PaymentMethodMobile, PaymentMethodCash}
}

// IsValid reports whether m is an accepted method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodMobile, PaymentMethodCash:
		return true
	}
	return false
}

// Order is a completed purchase. It is never modified after creation.
type Order struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Items         []cart.LineItem `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	PromoCode     string          `json:"promoCode,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
	Customer      string          `json:"customer,omitempty"`
}

// PlacedAt parses Date. Orders written by older clients may carry a
// locale-formatted date, in which case ok is false.
func (o Order) PlacedAt() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, o.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NewID returns an opaque, uppercase order identifier
func NewID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:12])
}

// FormatDate renders t the way orders store it
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
