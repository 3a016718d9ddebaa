package dto

import (
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest is the HTTP body for a transfer between accounts. The
// source account comes from the URL path. Amount accepts a decimal string.
type TransferRequest struct {
	DestinationAccountID string           `json:"destinationAccountId" binding:"required"`
	Amount               *decimal.Decimal `json:"amount" binding:"required"`
}

// CreateTransactionRequest is the transfer engine's input: a tagged variant
// over transfer kinds. Only domain.KindTransferBetweenAccounts is
// implemented.
type CreateTransactionRequest struct {
	Kind                 domain.TransferKind
	SourceAccountID      string
	DestinationAccountID string
	Amount               *decimal.Decimal
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	ID          int64                  `json:"id"`
	Type        domain.TransactionType `json:"type"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	Currency    domain.Currency        `json:"currency"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Type:        txn.Type,
		Description: txn.Description,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
