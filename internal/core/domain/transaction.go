package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction record.
type TransactionType string

const (
	TransferBetweenAccounts TransactionType = "TRANSFER_BETWEEN_ACCOUNTS"
)

// TransferKind tags the variant of transaction a caller asks the engine to
// create. Exactly one kind is implemented; the rest fail with ErrUnsupported.
type TransferKind string

const (
	KindTransferBetweenAccounts TransferKind = "transfer"
)

// Transaction represents one side of a money movement. A transfer produces a
// mirrored pair: a credit record (positive amount) owned by the destination
// account and a debit record (negative amount) owned by the source account.
// Immutable after creation except for deletion during rollback.
type Transaction struct {
	ID                    int64           `json:"id"`        // Store-assigned, unique store-wide
	OwnerAccountID        int64           `json:"-"`         // Internal id of the account this record belongs to
	CounterpartyAccountID int64           `json:"-"`         // Internal id of the other side of the movement
	Type                  TransactionType `json:"type"`
	Description           string          `json:"description"`
	Amount                decimal.Decimal `json:"amount"` // Positive = credit to owner, negative = debit
	Currency              Currency        `json:"currency"`
	CreatedAt             time.Time       `json:"createdAt"` // Assigned by the store at save time
}
