// internal/domain/account/entity.go
package account

import (
	"time"

	"github.com/your-org/foodhub-storefront/internal/domain/loyalty"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/pkg/apperror"
)

var (
	ErrMissingField          = apperror.Validation("missing_field", "email and password are required")
	ErrPasswordMismatch      = apperror.Validation("password_mismatch", "passwords do not match")
	ErrDuplicateEmail        = apperror.Auth("duplicate_email", "an account with this email already exists")
	ErrInvalidCredentials    = apperror.Auth("invalid_credentials", "invalid email or password")
	ErrOTPMismatch           = apperror.Auth("otp_mismatch", "incorrect verification code")
	ErrNoPendingVerification = apperror.Conflict("no_pending_verification", "no verification in progress")
)

// Account is a registered customer. Orders are newest first.
type Account struct {
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	Points    int64         `json:"points"`
	Orders    []order.Order `json:"orders"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Profile is the account as shown to its owner, without the credential
type Profile struct {
	Email     string         `json:"email"`
	Loyalty   loyalty.Status `json:"loyalty"`
	Orders    []order.Order  `json:"orders"`
	CreatedAt time.Time      `json:"created_at"`
}

// Profile builds the dashboard view of a
func (a Account) Profile() Profile {
	orders := a.Orders
	if orders == nil {
		orders = []order.Order{}
	}
	return Profile{
		Email:     a.Email,
		Loyalty:   loyalty.StatusFor(a.Points),
		Orders:    orders,
		CreatedAt: a.CreatedAt,
	}
}

// RecordOrder returns a copy of a with o prepended and earned points credited
func (a Account) RecordOrder(o order.Order, earned int64) Account {
	orders := make([]order.Order, 0, len(a.Orders)+1)
	orders = append(orders, o)
	orders = append(orders, a.Orders...)
	a.Orders = orders
	a.Points += earned
	return a
}

// CredentialVerifier hashes and checks passwords
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(password, stored string) error
}
