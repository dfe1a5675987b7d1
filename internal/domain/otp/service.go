// internal/domain/otp/service.go
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
)

// Service issues and checks one-time codes. At most one challenge is outstanding per session.
type Service struct {
	repo     *storage.Repository
	cfg      Config
	notifier Notifier
	log      logrus.FieldLogger

	generate func() (string, error)
	now      func() time.Time
}

// Option customises a Service
type Option func(*Service)

// WithNotifier delivers codes through n in addition to any on-screen display
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithGenerator replaces the random code source
func WithGenerator(fn func() (string, error)) Option {
	return func(s *Service) { s.generate = fn }
}

// WithClock replaces time.Now
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService creates a service keeping its challenge in the session-scoped repo
func NewService(sessionRepo *storage.Repository, cfg Config, log logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{
		repo:     sessionRepo,
		cfg:      cfg,
		log:      log,
		generate: GenerateCode,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCode returns a uniformly random code in [1000, 9999]
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}

// Issue replaces any outstanding challenge with a new one for email
func (s *Service) Issue(ctx context.Context, email string) (*Challenge, error) {
	code, err := s.generate()
	if err != nil {
		return nil, err
	}

	record := meta{
		Email:    email,
		IssuedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, storage.KeyPendingOTP, code); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, storage.KeyPendingOTPMeta, record); err != nil {
		s.log.WithError(err).WithField("email", email).Warn("failed to record verification code issue time")
	}

	if s.notifier != nil {
		if err := s.notifier.SendCode(ctx, email, code); err != nil {
			s.log.WithError(err).WithField("email", email).Warn("failed to deliver verification code")
		}
	}

	challenge := &Challenge{
		Email:    email,
		IssuedAt: record.IssuedAt,
	}
	if s.cfg.ExposeCode {
		challenge.Code = code
	}
	if s.cfg.TTL > 0 {
		expires := record.IssuedAt.Add(s.cfg.TTL)
		challenge.ExpiresAt = &expires
	}

	s.log.WithField("email", email).Info("verification code issued")
	return challenge, nil
}

// Verify compares input with the outstanding code. A match consumes the
// challenge, so it succeeds at most once. With no challenge it returns false.
// A code without metadata never expires and starts its attempt count at zero.
func (s *Service) Verify(ctx context.Context, input string) (bool, error) {
	code, ok := storage.Load[storedCode](ctx, s.repo, storage.KeyPendingOTP)
	if !ok {
		return false, nil
	}
	record, hasMeta := storage.Load[meta](ctx, s.repo, storage.KeyPendingOTPMeta)

	if s.cfg.TTL > 0 && hasMeta && s.now().UTC().After(record.IssuedAt.Add(s.cfg.TTL)) {
		s.discard(ctx)
		return false, ErrExpired
	}

	if input == string(code) {
		s.discard(ctx)
		return true, nil
	}

	record.Attempts++
	if s.cfg.MaxAttempts > 0 && record.Attempts >= s.cfg.MaxAttempts {
		s.discard(ctx)
		s.log.WithField("email", record.Email).Warn("verification attempts exhausted")
		return false, ErrTooManyAttempts
	}

	if err := s.repo.Save(ctx, storage.KeyPendingOTPMeta, record); err != nil {
		s.log.WithError(err).Warn("failed to record verification attempt")
	}
	return false, nil
}

// Pending reports whether a challenge is outstanding
func (s *Service) Pending(ctx context.Context) bool {
	_, ok := storage.Load[storedCode](ctx, s.repo, storage.KeyPendingOTP)
	return ok
}

// Discard drops the outstanding challenge
func (s *Service) Discard(ctx context.Context) {
	s.discard(ctx)
}

func (s *Service) discard(ctx context.Context) {
	for _, key := range []string{storage.KeyPendingOTP, storage.KeyPendingOTPMeta} {
		if err := s.repo.Remove(ctx, key); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to clear verification code")
		}
	}
}
