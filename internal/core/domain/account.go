package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a monetary account within the core domain.
// This is the primary representation used by services.
type Account struct {
	ID                 int64           `json:"-"`         // Store-assigned sequence number; joins transactions to accounts, never exposed
	AccountID          string          `json:"accountID"` // Externally visible identifier (e.g., UUID)
	Currency           Currency        `json:"currency"`  // NON-NULL for any persisted account
	Balance            decimal.Decimal `json:"balance"`
	TransactionHistory []Transaction   `json:"transactionHistory"` // Derived view: transactions owned by this account
}
