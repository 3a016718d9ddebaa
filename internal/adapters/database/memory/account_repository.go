package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
)

// AccountRepository is the in-memory account store. A single coarse mutex
// guards the whole backing collection, giving linearizable semantics for
// whole-store reads and writes.
//
// The transaction history kept on a stored record is the history that was
// current at the last accepted write. It acts as the optimistic-concurrency
// token checked by UpdateAccounts; snapshots handed out by reads get their
// history recomputed from the transaction store instead.
type AccountRepository struct {
	mu       sync.Mutex
	accounts []domain.Account
	nextID   int64

	txnRepo portsrepo.TransactionReader
}

// NewAccountRepository creates an empty in-memory account store that derives
// transaction histories from txnRepo.
func NewAccountRepository(txnRepo portsrepo.TransactionReader) *AccountRepository {
	return &AccountRepository{
		nextID:  1,
		txnRepo: txnRepo,
	}
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// FindAccountByID returns a defensive copy of the account with its history
// populated from the transaction store. The two stores are separate lock
// domains, so the history may reflect a transaction appended a moment after
// the account snapshot was taken; the transfer engine does not rely on this
// field for its own correctness.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.Lock()
	var found *domain.Account
	for i := range r.accounts {
		if r.accounts[i].AccountID == accountID {
			snapshot := copyAccount(r.accounts[i])
			found = &snapshot
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	if err := r.populateHistory(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

// ListAccounts returns a snapshot of every account with histories populated.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	snapshots := make([]domain.Account, len(r.accounts))
	for i := range r.accounts {
		snapshots[i] = copyAccount(r.accounts[i])
	}
	r.mu.Unlock()

	for i := range snapshots {
		if err := r.populateHistory(ctx, &snapshots[i]); err != nil {
			return nil, err
		}
	}
	return snapshots, nil
}

// SaveAccount persists the account, replacing an existing record with the
// same public id in place (keeping its internal id) or appending a new one
// with a fresh internal id.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := validateAccount(account); err != nil {
		return nil, err
	}

	stored := copyAccount(account)
	r.mu.Lock()
	replaced := false
	for i := range r.accounts {
		if r.accounts[i].AccountID == stored.AccountID {
			stored.ID = r.accounts[i].ID
			r.accounts[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		stored.ID = r.nextID
		r.nextID++
		r.accounts = append(r.accounts, stored)
	}
	snapshot := copyAccount(stored)
	r.mu.Unlock()

	if err := r.populateHistory(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// DeleteAccount removes and returns the account with the given public id.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].AccountID == accountID {
			removed := copyAccount(r.accounts[i])
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
}

// DeleteAllAccounts removes every account and returns the removed records.
func (r *AccountRepository) DeleteAllAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]domain.Account, len(r.accounts))
	for i := range r.accounts {
		removed[i] = copyAccount(r.accounts[i])
	}
	r.accounts = nil
	return removed, nil
}

// UpdateAccounts applies the batch of account updates all-or-nothing. Each
// incoming account must carry the persisted record's history plus exactly one
// new transaction; anything else means a conflicting write sneaked in between
// the caller's load and this commit, and the whole batch is rejected.
// Conflict is signaled by a false return, never an error.
func (r *AccountRepository) UpdateAccounts(ctx context.Context, accounts []domain.Account) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	indexes := make([]int, len(accounts))
	for i := range accounts {
		if validateAccount(accounts[i]) != nil {
			return false
		}
		idx := -1
		for j := range r.accounts {
			if r.accounts[j].AccountID == accounts[i].AccountID {
				idx = j
				break
			}
		}
		if idx < 0 {
			return false
		}
		if !historyAdvancedByOne(r.accounts[idx].TransactionHistory, accounts[i].TransactionHistory) {
			return false
		}
		indexes[i] = idx
	}

	for i := range accounts {
		stored := copyAccount(accounts[i])
		stored.ID = r.accounts[indexes[i]].ID
		r.accounts[indexes[i]] = stored
	}
	return true
}

// historyAdvancedByOne reports whether incoming is persisted plus exactly one
// new transaction: one longer, with every persisted record still present.
func historyAdvancedByOne(persisted, incoming []domain.Transaction) bool {
	if len(incoming) != len(persisted)+1 {
		return false
	}
	incomingIDs := make(map[int64]struct{}, len(incoming))
	for _, txn := range incoming {
		incomingIDs[txn.ID] = struct{}{}
	}
	for _, txn := range persisted {
		if _, ok := incomingIDs[txn.ID]; !ok {
			return false
		}
	}
	return true
}

func (r *AccountRepository) populateHistory(ctx context.Context, account *domain.Account) error {
	history, err := r.txnRepo.FindTransactionsByAccountID(ctx, account.ID)
	if err != nil {
		return err
	}
	account.TransactionHistory = history
	return nil
}

func copyAccount(account domain.Account) domain.Account {
	copied := account
	copied.TransactionHistory = make([]domain.Transaction, len(account.TransactionHistory))
	copy(copied.TransactionHistory, account.TransactionHistory)
	return copied
}

func validateAccount(account domain.Account) error {
	if account.AccountID == "" || account.Currency == "" {
		return fmt.Errorf("%w: account id and currency can't be empty", apperrors.ErrValidation)
	}
	return nil
}
