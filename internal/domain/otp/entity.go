// internal/domain/otp/entity.go
package otp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

var (
	ErrExpired         = apperror.Auth("otp_expired", "verification code has expired")
	ErrTooManyAttempts = apperror.Auth("otp_attempts_exceeded", "too many incorrect verification attempts")
)

// Challenge is handed to the caller after issuing a code. Code is only set
// when the deployment displays codes on screen instead of delivering them.
type Challenge struct {
	Email     string     `json:"email"`
	Code      string     `json:"code,omitempty"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// storedCode is the value under the pending code key. Older sessions may
// hold it as a bare number.
type storedCode string

func (c *storedCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = storedCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = storedCode(n.String())
	return nil
}

// meta tracks the optional TTL and attempt cap next to the code
type meta struct {
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issuedAt"`
	Attempts int       `json:"attempts"`
}

// Notifier delivers a code out of band
type Notifier interface {
	SendCode(ctx context.Context, email, code string) error
}

// Config tunes the optional hardening. Zero values keep a challenge valid
// forever and allow unlimited retries.
type Config struct {
	TTL         time.Duration
	MaxAttempts int
	ExposeCode  bool
}
