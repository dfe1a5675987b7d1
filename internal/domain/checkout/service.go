// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/domain/account"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
	"github.com/your-org/foodhub-storefront/internal/domain/loyalty"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/domain/promo"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/events"
)

// Status is the flow as shown to the customer
type Status struct {
	State   State    `json:"state"`
	Quote   *Quote   `json:"quote,omitempty"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

// Flow drives a single checkout from the cart to a recorded order
type Flow struct {
	cart      *cart.Cart
	selection *promo.Selection
	directory *account.Directory
	history   *order.History
	publisher events.Publisher
	processor PaymentProcessor
	cfg       Config
	log       logrus.FieldLogger
	now       func() time.Time

	mu            sync.Mutex
	state         State
	quote         *Quote
	receipt       *Receipt
	attempt       uint64
	cancelPayment context.CancelFunc
}

// NewFlow creates an idle flow
func NewFlow(
	c *cart.Cart,
	selection *promo.Selection,
	directory *account.Directory,
	history *order.History,
	publisher events.Publisher,
	processor PaymentProcessor,
	cfg Config,
	log logrus.FieldLogger,
) *Flow {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Flow{
		cart:      c,
		selection: selection,
		directory: directory,
		history:   history,
		publisher: publisher,
		processor: processor,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
		state:     StateIdle,
	}
}

// State returns the current step
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Status returns the current step with its quote or receipt
func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := Status{State: f.state}
	switch f.state {
	case StatePaymentPending, StatePaymentProcessing:
		status.Quote = f.quote
	case StateCompleted:
		status.Receipt = f.receipt
	}
	return status
}

// Quote prices the cart as it is now without changing the flow
func (f *Flow) Quote() Quote {
	return f.buildQuote()
}

// Begin starts checkout. A guest is moved to StateLoginRequired; an empty
// cart is rejected without touching the current state or receipt.
func (f *Flow) Begin(ctx context.Context) (*Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StatePaymentProcessing {
		return nil, ErrPaymentInFlight
	}

	if _, ok := f.directory.Current(ctx); !ok {
		f.state = StateLoginRequired
		f.log.Info("checkout requires login")
		return nil, ErrLoginRequired
	}

	if f.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	quote := f.buildQuote()
	f.quote = &quote
	f.receipt = nil
	f.state = StatePaymentPending

	f.log.WithFields(logrus.Fields{
		"items": len(quote.Items),
		"total": quote.Total.StringFixed(2),
	}).Info("checkout started")
	return &quote, nil
}

// Pay validates details and runs the payment. The flow lock is released
// while the processor runs so Cancel can interrupt it; the cart stays frozen
// until the attempt settles, so the charged lines are the ones recorded.
func (f *Flow) Pay(ctx context.Context, details PaymentDetails) (*Receipt, error) {
	f.mu.Lock()
	switch f.state {
	case StatePaymentPending:
	case StatePaymentProcessing:
		f.mu.Unlock()
		return nil, ErrPaymentInFlight
	default:
		f.mu.Unlock()
		return nil, ErrNoPaymentPending
	}

	details.Method = order.PaymentMethod(strings.ToLower(strings.TrimSpace(string(details.Method))))
	if err := f.validate(details); err != nil {
		f.mu.Unlock()
		return nil, err
	}

	if f.cart.IsEmpty() {
		f.state = StateIdle
		f.quote = nil
		f.mu.Unlock()
		return nil, ErrEmptyCart
	}

	quote := f.buildQuote()
	f.quote = &quote
	f.state = StatePaymentProcessing
	f.cart.Freeze()
	f.attempt++
	attempt := f.attempt

	var (
		payCtx context.Context
		cancel context.CancelFunc
	)
	if f.cfg.PaymentTimeout > 0 {
		payCtx, cancel = context.WithTimeout(ctx, f.cfg.PaymentTimeout)
	} else {
		payCtx, cancel = context.WithCancel(ctx)
	}
	f.cancelPayment = cancel
	f.mu.Unlock()

	err := f.processor.Process(payCtx, quote, details)
	timedOut := errors.Is(payCtx.Err(), context.DeadlineExceeded)
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attempt != attempt || f.state != StatePaymentProcessing {
		return nil, ErrPaymentCancelled
	}
	f.cancelPayment = nil

	if err != nil {
		return nil, f.failLocked(err, timedOut)
	}

	receipt := f.completeLocked(ctx, quote, details)
	return receipt, nil
}

// Cancel abandons a pending or in-flight payment
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StatePaymentPending, StatePaymentProcessing:
	default:
		return ErrNothingToCancel
	}

	if f.cancelPayment != nil {
		f.cancelPayment()
		f.cancelPayment = nil
	}
	f.cart.Thaw()
	f.state = StateCancelled
	f.quote = nil
	f.log.Info("checkout cancelled")
	return nil
}

func (f *Flow) validate(details PaymentDetails) error {
	if !details.Method.IsValid() {
		return ErrInvalidMethod
	}
	if details.Method == order.PaymentMethodCard && len(strings.TrimSpace(details.CardNumber)) < f.cfg.MinCardLength {
		return ErrCardNumberTooShort
	}
	return nil
}

func (f *Flow) failLocked(err error, timedOut bool) error {
	f.cart.Thaw()
	switch {
	case timedOut:
		f.state = StateCancelled
		f.quote = nil
		f.log.WithError(err).Warn("payment timed out")
		return ErrPaymentTimeout.Wrap(err)
	case errors.Is(err, context.Canceled):
		f.state = StateCancelled
		f.quote = nil
		f.log.Info("payment aborted by caller")
		return ErrPaymentCancelled.Wrap(err)
	default:
		f.state = StatePaymentPending
		f.log.WithError(err).Warn("payment declined")
		return ErrPaymentFailed.Wrap(err)
	}
}

// completeLocked records the order. Failures after payment are collected as
// warnings; the customer has paid, so the order completes regardless.
func (f *Flow) completeLocked(ctx context.Context, quote Quote, details PaymentDetails) *Receipt {
	now := f.now()
	receipt := &Receipt{Customer: "Guest"}

	o := order.Order{
		ID:            order.NewID(),
		Date:          order.FormatDate(now),
		Items:         quote.Items,
		Subtotal:      quote.Subtotal,
		Tax:           quote.Tax,
		Total:         quote.Total,
		PaymentMethod: details.Method,
		PromoCode:     quote.PromoCode,
		Discount:      quote.Discount,
	}

	acct, loggedIn := f.directory.Current(ctx)
	if loggedIn {
		o.Customer = acct.Email
		receipt.Customer = acct.Email
	}

	if err := f.history.Append(ctx, o); err != nil {
		receipt.Warnings = append(receipt.Warnings, "order history could not be saved")
		f.log.WithError(err).WithField("order_id", o.ID).Error("failed to save order history")
	}

	if loggedIn {
		receipt.PointsEarned = loyalty.PointsFor(quote.Subtotal, f.cfg.PointsUnit)
		updated := acct.RecordOrder(o, receipt.PointsEarned)
		receipt.TotalPoints = updated.Points
		if err := f.directory.Upsert(ctx, updated); err != nil {
			receipt.Warnings = append(receipt.Warnings, "account could not be updated")
			f.log.WithError(err).WithField("order_id", o.ID).Error("failed to update account after order")
		}
	}

	event := events.NewOrderCompleted(o, o.Customer, receipt.PointsEarned, now)
	if err := f.publisher.Publish(ctx, event); err != nil {
		receipt.Warnings = append(receipt.Warnings, "order notification could not be sent")
		f.log.WithError(err).WithField("order_id", o.ID).Error("failed to publish order event")
	}

	f.cart.Clear()
	f.cart.Thaw()
	f.selection.Clear()

	receipt.Order = o
	f.receipt = receipt
	f.quote = nil
	f.state = StateCompleted

	f.log.WithFields(logrus.Fields{
		"order_id":      o.ID,
		"total":         o.Total.StringFixed(2),
		"points_earned": receipt.PointsEarned,
		"warnings":      len(receipt.Warnings),
	}).Info("order completed")
	return receipt
}

// buildQuote prices the cart. Tax is charged on the raw subtotal unless the
// promo is configured to reduce the taxable amount.
func (f *Flow) buildQuote() Quote {
	snapshot := f.cart.Snapshot()
	subtotal := snapshot.Totals.SubTotal
	discount := f.selection.DiscountFor(subtotal)

	var code string
	if active, ok := f.selection.Active(); ok {
		code = active.Code
	}

	taxable := subtotal
	if f.cfg.ApplyPromoToTotal {
		taxable = decimal.Max(subtotal.Sub(discount), decimal.Zero)
	}
	tax := taxable.Mul(f.cfg.TaxRate).Round(2)

	return Quote{
		Items:     snapshot.Items,
		Subtotal:  subtotal,
		Discount:  discount,
		PromoCode: code,
		TaxRate:   f.cfg.TaxRate,
		Tax:       tax,
		Total:     taxable.Add(tax),
		Methods:   order.PaymentMethods(),
	}
}
