package seed

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// InsertSampleData preloads two accounts and three transfer records so the
// API has something to show out of the box. Intended for local runs behind
// the INSERT_SAMPLE_DATA toggle; it is not part of the ledger core contract.
func InsertSampleData(ctx context.Context, accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) error {
	account1, err := accountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "account-1",
		Currency:  domain.USD,
		Balance:   decimal.NewFromInt(1000),
	})
	if err != nil {
		return fmt.Errorf("seed account-1: %w", err)
	}
	account2, err := accountRepo.SaveAccount(ctx, domain.Account{
		AccountID: "account-2",
		Currency:  domain.USD,
		Balance:   decimal.NewFromInt(2000),
	})
	if err != nil {
		return fmt.Errorf("seed account-2: %w", err)
	}

	transfers := []domain.Transaction{
		{
			OwnerAccountID:        account1.ID,
			CounterpartyAccountID: account2.ID,
			Type:                  domain.TransferBetweenAccounts,
			Description:           "Transfer",
			Amount:                decimal.NewFromInt(100),
			Currency:              domain.USD,
		},
		{
			OwnerAccountID:        account1.ID,
			CounterpartyAccountID: account2.ID,
			Type:                  domain.TransferBetweenAccounts,
			Description:           "Transfer",
			Amount:                decimal.NewFromInt(10),
			Currency:              domain.USD,
		},
		{
			OwnerAccountID:        account2.ID,
			CounterpartyAccountID: account1.ID,
			Type:                  domain.TransferBetweenAccounts,
			Description:           "Transfer",
			Amount:                decimal.NewFromInt(500),
			Currency:              domain.USD,
		},
	}
	for i, txn := range transfers {
		saved, err := txnRepo.SaveTransaction(ctx, txn)
		if err != nil {
			return fmt.Errorf("seed transfer %d: %w", i+1, err)
		}
		if saved.OwnerAccountID == account1.ID {
			account1.TransactionHistory = append(account1.TransactionHistory, *saved)
		} else {
			account2.TransactionHistory = append(account2.TransactionHistory, *saved)
		}
	}

	// Re-save the accounts with their histories attached so the store's
	// optimistic token starts in sync with the derived history view.
	if _, err := accountRepo.SaveAccount(ctx, *account1); err != nil {
		return fmt.Errorf("seed account-1 history: %w", err)
	}
	if _, err := accountRepo.SaveAccount(ctx, *account2); err != nil {
		return fmt.Errorf("seed account-2 history: %w", err)
	}
	return nil
}
