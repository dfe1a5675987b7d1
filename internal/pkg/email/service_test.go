package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/foodhub-storefront/internal/config"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(ttl time.Duration) (*EmailService, *capturedMail) {
	cfg := &config.Config{}
	cfg.Email = config.EmailConfig{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  2525,
		FromEmail: "noreply@foodhub.local",
		FromName:  "FoodHub",
	}
	cfg.OTP.TTL = ttl

	log, _ := test.NewNullLogger()
	s := NewEmailService(cfg, log)
	captured := &capturedMail{}
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		captured.addr, captured.from, captured.to, captured.msg = addr, from, to, string(msg)
		return nil
	}
	return s, captured
}

func TestSendCode(t *testing.T) {
	s, mail := newTestService(5 * time.Minute)

	require.NoError(t, s.SendCode(context.Background(), "ada@example.com", "4821"))

	assert.Equal(t, "smtp.example.com:2525", mail.addr)
	assert.Equal(t, "noreply@foodhub.local", mail.from)
	assert.Equal(t, []string{"ada@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "From: FoodHub <noreply@foodhub.local>\r\n")
	assert.Contains(t, mail.msg, "Subject: Your FoodHub verification code\r\n")
	assert.Contains(t, mail.msg, "4821")
	assert.Contains(t, mail.msg, "expires in 5m0s")
}

func TestSendCodeWithoutExpiry(t *testing.T) {
	s, mail := newTestService(0)

	require.NoError(t, s.SendCode(context.Background(), "ada@example.com", "4821"))
	assert.NotContains(t, mail.msg, "expires")
}

func TestSendEmailWrapsTransportError(t *testing.T) {
	s, _ := newTestService(0)
	boom := errors.New("connection refused")
	s.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := s.SendCode(context.Background(), "ada@example.com", "4821")
	assert.ErrorIs(t, err, boom)
}

func TestSendEmailHonorsCancelledContext(t *testing.T) {
	s, mail := newTestService(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SendCode(ctx, "ada@example.com", "4821"), context.Canceled)
	assert.Empty(t, mail.addr)
}
