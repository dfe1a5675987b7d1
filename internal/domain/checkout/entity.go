// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

// LoginRedirect is where a guest is sent when they try to check out
const LoginRedirect = "/login"

var (
	ErrLoginRequired      = apperror.LoginRequired("please log in to complete your order")
	ErrEmptyCart          = apperror.Validation("empty_cart", "your cart is empty")
	ErrPaymentInFlight    = apperror.Conflict("payment_in_flight", "a payment is already being processed")
	ErrNoPaymentPending   = apperror.Conflict("no_payment_pending", "start checkout before paying")
	ErrNothingToCancel    = apperror.Conflict("nothing_to_cancel", "no checkout in progress")
	ErrInvalidMethod      = apperror.Validation("invalid_payment_method", "payment method must be card, mobile or cash")
	ErrCardNumberTooShort = apperror.Validation("card_number_too_short", "please enter a valid card number")
	ErrPaymentCancelled   = apperror.Payment("payment_cancelled", "payment was cancelled")
	ErrPaymentTimeout     = apperror.Payment("payment_timeout", "payment timed out")
	ErrPaymentFailed      = apperror.Payment("payment_failed", "payment could not be processed")
)

// State is a step of the checkout flow
type State string

const (
	StateIdle              State = "idle"
	StateLoginRequired     State = "login_required"
	StatePaymentPending    State = "payment_pending"
	StatePaymentProcessing State = "payment_processing"
	StateCompleted         State = "completed"
	StateCancelled         State = "cancelled"
)

// Quote is what the customer is asked to pay
type Quote struct {
	Items     []cart.LineItem       `json:"items"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Discount  decimal.Decimal       `json:"discount"`
	PromoCode string                `json:"promo_code,omitempty"`
	TaxRate   decimal.Decimal       `json:"tax_rate"`
	Tax       decimal.Decimal       `json:"tax"`
	Total     decimal.Decimal       `json:"total"`
	Methods   []order.PaymentMethod `json:"payment_methods"`
}

// PaymentDetails is the customer's payment input
type PaymentDetails struct {
	Method     order.PaymentMethod `json:"method"`
	CardNumber string              `json:"card_number,omitempty"`
}

// Receipt is the outcome of a completed checkout. Warnings lists the
// follow-up steps that failed after the payment was taken.
type Receipt struct {
	Order        order.Order `json:"order"`
	Customer     string      `json:"customer"`
	PointsEarned int64       `json:"points_earned"`
	TotalPoints  int64       `json:"total_points"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// Config holds pricing and payment settings
type Config struct {
	TaxRate           decimal.Decimal
	PointsUnit        int64
	MinCardLength     int
	PaymentTimeout    time.Duration
	ApplyPromoToTotal bool
}
