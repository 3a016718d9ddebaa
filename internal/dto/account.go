package dto

import (
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Total is a pointer so a missing field can be told apart from a zero balance.
type CreateAccountRequest struct {
	Total    *decimal.Decimal `json:"total" binding:"required"`
	Currency domain.Currency  `json:"currency" binding:"required,currency"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account; the internal id is never exposed.
type AccountResponse struct {
	ID                 string                `json:"id"`
	Total              decimal.Decimal       `json:"total"`
	Currency           domain.Currency       `json:"currency"`
	TransactionHistory []TransactionResponse `json:"transactionHistory"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                 acc.AccountID,
		Total:              acc.Balance,
		Currency:           acc.Currency,
		TransactionHistory: ToListTransactionResponse(acc.TransactionHistory),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
