package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
)

// TransactionRepository is the append-only in-memory transaction store,
// guarded by its own coarse mutex. Records are immutable after save;
// DeleteTransaction exists only for the transfer engine's rollback path.
type TransactionRepository struct {
	mu          sync.Mutex
	txns        []domain.Transaction
	nextID      int64
	lastCreated time.Time
}

// NewTransactionRepository creates an empty in-memory transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{nextID: 1}
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

// SaveTransaction appends a fresh record, assigning its id and creation
// timestamp, and returns the persisted copy.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	txn.ID = r.nextID
	r.nextID++
	txn.CreatedAt = r.nextCreatedAt()
	r.txns = append(r.txns, txn)
	persisted := txn
	return &persisted, nil
}

// FindTransactionByID returns a copy of the record with the given id.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, txn := range r.txns {
		if txn.ID == id {
			found := txn
			return &found, nil
		}
	}
	return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
}

// FindTransactionsByAccountID returns every record owned by the account with
// the given internal id. Ordering carries no meaning.
func (r *TransactionRepository) FindTransactionsByAccountID(ctx context.Context, ownerAccountID int64) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]domain.Transaction, 0)
	for _, txn := range r.txns {
		if txn.OwnerAccountID == ownerAccountID {
			owned = append(owned, txn)
		}
	}
	return owned, nil
}

// DeleteTransaction removes and returns the record with the given id. Used
// exclusively to roll back a partially persisted transfer; it does not
// reverse any balance mutation already applied to an account.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, txn := range r.txns {
		if txn.ID == id {
			removed := txn
			r.txns = append(r.txns[:i], r.txns[i+1:]...)
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
}

// DeleteAllTransactions removes every record and returns the removed ones.
func (r *TransactionRepository) DeleteAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]domain.Transaction, len(r.txns))
	copy(removed, r.txns)
	r.txns = nil
	return removed, nil
}

// nextCreatedAt keeps CreatedAt strictly monotonic per store instance even
// when the wall clock stalls. Callers must hold r.mu.
func (r *TransactionRepository) nextCreatedAt() time.Time {
	now := time.Now().UTC()
	if !now.After(r.lastCreated) {
		now = r.lastCreated.Add(time.Nanosecond)
	}
	r.lastCreated = now
	return now
}

func validateTransaction(txn domain.Transaction) error {
	var problems []string
	if txn.ID != 0 {
		problems = append(problems, "id is already set")
	}
	if txn.Currency == "" {
		problems = append(problems, "currency is empty")
	}
	if txn.OwnerAccountID == 0 {
		problems = append(problems, "owner account is empty")
	}
	if txn.Amount.IsZero() {
		problems = append(problems, "amount is empty")
	}
	if txn.Type == "" {
		problems = append(problems, "transaction type is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: transaction rejected cause: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}
