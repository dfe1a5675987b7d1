// internal/domain/checkout/payment.go
package checkout

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// PaymentProcessor takes payment for a quote
type PaymentProcessor interface {
	Process(ctx context.Context, quote Quote, details PaymentDetails) error
}

// SimulatedProcessor approves every payment after a fixed delay
type SimulatedProcessor struct {
	delay time.Duration
	log   logrus.FieldLogger
}

// NewSimulatedProcessor creates a processor that waits delay before approving
func NewSimulatedProcessor(delay time.Duration, log logrus.FieldLogger) *SimulatedProcessor {
	return &SimulatedProcessor{
		delay: delay,
		log:   log,
	}
}

// Process waits for the delay or until ctx is done, whichever is first
func (p *SimulatedProcessor) Process(ctx context.Context, quote Quote, details PaymentDetails) error {
	p.log.WithFields(logrus.Fields{
		"method": details.Method,
		"amount": quote.Total.StringFixed(2),
	}).Info("processing payment")

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
