package repositories

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a snapshot of the account identified by its
	// public id, with its transaction history populated from the transaction
	// store. Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a snapshot of every account with histories
	// populated. Ordering carries no meaning.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists the account. An account with the same public id is
	// replaced in place, keeping its internal id; otherwise a fresh internal
	// id is assigned. Returns a snapshot of the persisted account.
	// Fails with apperrors.ErrValidation when the public id or currency is
	// missing.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeleteAccount removes and returns the account, or apperrors.ErrNotFound.
	DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// DeleteAllAccounts removes every account and returns the removed records.
	DeleteAllAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccounts applies all the given account updates or none of them.
	// Each incoming account is accepted only if it represents the persisted
	// state plus exactly one new transaction in its history. A false return
	// signals a conflicting concurrent update (or an invalid account in the
	// batch); nothing is saved in that case. It never returns an error.
	UpdateAccounts(ctx context.Context, accounts []domain.Account) bool
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
