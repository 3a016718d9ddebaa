package repositories

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a copy of the transaction with the given
	// store-assigned id, or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// FindTransactionsByAccountID retrieves every transaction owned by the
	// account with the given internal id. Ordering carries no meaning.
	FindTransactionsByAccountID(ctx context.Context, ownerAccountID int64) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveTransaction appends a fresh transaction record, assigning its id and
	// creation timestamp, and returns the persisted copy. Fails with
	// apperrors.ErrValidation if the id is already set or currency, owner
	// account, amount or type is missing.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction removes and returns the record with the given id, or
	// apperrors.ErrNotFound. Exists solely so the transfer engine can roll
	// back a partially persisted transfer.
	DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error)

	// DeleteAllTransactions removes every record and returns the removed ones.
	DeleteAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionRepository combines all transaction-related repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
