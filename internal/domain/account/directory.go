// internal/domain/account/directory.go
package account

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
)

// Directory is the persisted list of accounts plus the current session.
// Email lookups ignore case.
type Directory struct {
	repo *storage.Repository
	log  logrus.FieldLogger

	mu      sync.Mutex
	current *Account
}

func NewDirectory(repo *storage.Repository, log logrus.FieldLogger) *Directory {
	return &Directory{
		repo: repo,
		log:  log,
	}
}

// List returns every stored account
func (d *Directory) List(ctx context.Context) []Account {
	accounts, ok := storage.Load[[]Account](ctx, d.repo, storage.KeyUsers)
	if !ok || accounts == nil {
		return []Account{}
	}
	return accounts
}

// FindByEmail returns the account whose email matches ignoring case
func (d *Directory) FindByEmail(ctx context.Context, email string) (*Account, bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false
	}
	for _, a := range d.List(ctx) {
		if strings.EqualFold(a.Email, email) {
			found := a
			return &found, true
		}
	}
	return nil, false
}

// Upsert replaces the account with the same email, or appends it, and makes
// it the current session. Both writes are attempted even if one fails. When
// the stored list cannot be read it is left untouched and the session alone
// is updated.
func (d *Directory) Upsert(ctx context.Context, acct Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, _, readErr := storage.Read[[]Account](ctx, d.repo, storage.KeyUsers)
	if readErr != nil {
		d.log.WithError(readErr).WithField("email", acct.Email).Error("account list unreadable, not saving")
		return errors.Join(readErr, d.setCurrentLocked(ctx, acct))
	}

	replaced := false
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, acct.Email) {
			accounts[i] = acct
			replaced = true
			break
		}
	}
	if !replaced {
		accounts = append(accounts, acct)
	}

	saveErr := d.repo.Save(ctx, storage.KeyUsers, accounts)
	sessionErr := d.setCurrentLocked(ctx, acct)

	d.log.WithFields(logrus.Fields{
		"email":    acct.Email,
		"replaced": replaced,
	}).Debug("account saved")

	return errors.Join(saveErr, sessionErr)
}

// SetCurrent makes acct the logged-in account
func (d *Directory) SetCurrent(ctx context.Context, acct Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setCurrentLocked(ctx, acct)
}

func (d *Directory) setCurrentLocked(ctx context.Context, acct Account) error {
	snapshot := acct
	d.current = &snapshot
	return d.repo.Save(ctx, storage.KeyCurrentUser, acct)
}

// Current returns the logged-in account. The directory copy wins over the
// session snapshot when both exist.
func (d *Directory) Current(ctx context.Context) (*Account, bool) {
	d.mu.Lock()
	session := d.current
	if session == nil {
		if stored, ok := storage.Load[Account](ctx, d.repo, storage.KeyCurrentUser); ok && stored.Email != "" {
			session = &stored
			d.current = session
		}
	}
	d.mu.Unlock()

	if session == nil {
		return nil, false
	}
	if acct, ok := d.FindByEmail(ctx, session.Email); ok {
		return acct, true
	}
	snapshot := *session
	return &snapshot, true
}

// Logout clears the session
func (d *Directory) Logout(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = nil
	return d.repo.Remove(ctx, storage.KeyCurrentUser)
}
