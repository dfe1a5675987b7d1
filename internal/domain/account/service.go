// internal/domain/account/service.go
package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/domain/otp"
)

type pendingKind string

const (
	pendingSignup pendingKind = "signup"
	pendingLogin  pendingKind = "login"
)

// pendingAction is a signup or login waiting for its verification code
type pendingAction struct {
	kind         pendingKind
	email        string
	passwordHash string
}

// Authenticator runs the two-step signup and login flows: credentials first,
// then a one-time code. Only one flow is in progress at a time.
type Authenticator struct {
	directory *Directory
	otp       *otp.Service
	verifier  CredentialVerifier
	log       logrus.FieldLogger
	now       func() time.Time

	mu      sync.Mutex
	pending *pendingAction
}

func NewAuthenticator(directory *Directory, otpService *otp.Service, verifier CredentialVerifier, log logrus.FieldLogger) *Authenticator {
	return &Authenticator{
		directory: directory,
		otp:       otpService,
		verifier:  verifier,
		log:       log,
		now:       time.Now,
	}
}

// Signup validates a new registration and issues a verification code.
// The account is only created once Verify succeeds.
func (a *Authenticator) Signup(ctx context.Context, email, password, confirmPassword string) (*otp.Challenge, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	if _, exists := a.directory.FindByEmail(ctx, email); exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := a.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	return a.begin(ctx, &pendingAction{kind: pendingSignup, email: email, passwordHash: hash})
}

// Login checks credentials and issues a verification code
func (a *Authenticator) Login(ctx context.Context, email, password string) (*otp.Challenge, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	acct, ok := a.directory.FindByEmail(ctx, email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := a.verifier.Verify(password, acct.Password); err != nil {
		a.log.WithField("email", acct.Email).Info("login rejected")
		return nil, ErrInvalidCredentials
	}

	return a.begin(ctx, &pendingAction{kind: pendingLogin, email: acct.Email})
}

func (a *Authenticator) begin(ctx context.Context, action *pendingAction) (*otp.Challenge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	challenge, err := a.otp.Issue(ctx, action.email)
	if err != nil {
		return nil, err
	}
	a.pending = action
	return challenge, nil
}

// Verify completes the pending flow when code matches. On a mismatch the
// flow stays open for another try.
func (a *Authenticator) Verify(ctx context.Context, code string) (*Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return nil, ErrNoPendingVerification
	}

	ok, err := a.otp.Verify(ctx, code)
	if err != nil {
		a.pending = nil
		return nil, err
	}
	if !ok {
		return nil, ErrOTPMismatch
	}

	action := a.pending
	a.pending = nil

	switch action.kind {
	case pendingSignup:
		return a.completeSignup(ctx, action)
	default:
		return a.completeLogin(ctx, action)
	}
}

func (a *Authenticator) completeSignup(ctx context.Context, action *pendingAction) (*Account, error) {
	if _, exists := a.directory.FindByEmail(ctx, action.email); exists {
		return nil, ErrDuplicateEmail
	}

	acct := Account{
		Email:     action.email,
		Password:  action.passwordHash,
		Points:    0,
		Orders:    []order.Order{},
		CreatedAt: a.now().UTC(),
	}
	if err := a.directory.Upsert(ctx, acct); err != nil {
		a.log.WithError(err).WithField("email", acct.Email).Warn("account created but not fully persisted")
	}

	a.log.WithField("email", acct.Email).Info("account created")
	return &acct, nil
}

func (a *Authenticator) completeLogin(ctx context.Context, action *pendingAction) (*Account, error) {
	acct, ok := a.directory.FindByEmail(ctx, action.email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := a.directory.SetCurrent(ctx, *acct); err != nil {
		a.log.WithError(err).WithField("email", acct.Email).Warn("session not persisted")
	}

	a.log.WithField("email", acct.Email).Info("user logged in")
	return acct, nil
}

// Cancel abandons the pending flow
func (a *Authenticator) Cancel(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = nil
	a.otp.Discard(ctx)
}

// Pending reports whether a flow is waiting for its code
func (a *Authenticator) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Logout clears the session and any flow in progress
func (a *Authenticator) Logout(ctx context.Context) error {
	a.Cancel(ctx)
	return a.directory.Logout(ctx)
}
