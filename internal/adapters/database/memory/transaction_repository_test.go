package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/money_transfer_app/internal/adapters/database/memory"
	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memory.TransactionRepository
}

func (suite *TransactionRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = memory.NewTransactionRepository()
}

func validTxn() domain.Transaction {
	return domain.Transaction{
		OwnerAccountID:        1,
		CounterpartyAccountID: 2,
		Type:                  domain.TransferBetweenAccounts,
		Description:           "Transfer",
		Amount:                decimal.NewFromInt(50),
		Currency:              domain.USD,
	}
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_AssignsIDAndCreatedAt() {
	first, err := suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)
	second, err := suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)

	suite.NotZero(first.ID)
	suite.Greater(second.ID, first.ID)
	suite.False(first.CreatedAt.IsZero())
	suite.True(second.CreatedAt.After(first.CreatedAt))
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_RejectsPresetID() {
	txn := validTxn()
	txn.ID = 42

	_, err := suite.repo.SaveTransaction(suite.ctx, txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionRepositoryTestSuite) TestSaveTransaction_RejectsMissingFields() {
	cases := map[string]func(*domain.Transaction){
		"currency": func(t *domain.Transaction) { t.Currency = "" },
		"owner":    func(t *domain.Transaction) { t.OwnerAccountID = 0 },
		"amount":   func(t *domain.Transaction) { t.Amount = decimal.Zero },
		"type":     func(t *domain.Transaction) { t.Type = "" },
	}
	for name, blank := range cases {
		txn := validTxn()
		blank(&txn)
		_, err := suite.repo.SaveTransaction(suite.ctx, txn)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
}

func (suite *TransactionRepositoryTestSuite) TestFindTransactionByID() {
	saved, err := suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)

	found, err := suite.repo.FindTransactionByID(suite.ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal(saved.ID, found.ID)
	suite.True(found.Amount.Equal(saved.Amount))

	_, err = suite.repo.FindTransactionByID(suite.ctx, 9999)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestFindTransactionsByAccountID() {
	mine := validTxn()
	theirs := validTxn()
	theirs.OwnerAccountID = 2
	theirs.CounterpartyAccountID = 1

	saved, err := suite.repo.SaveTransaction(suite.ctx, mine)
	suite.Require().NoError(err)
	_, err = suite.repo.SaveTransaction(suite.ctx, theirs)
	suite.Require().NoError(err)

	owned, err := suite.repo.FindTransactionsByAccountID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(owned, 1)
	suite.Equal(saved.ID, owned[0].ID)

	none, err := suite.repo.FindTransactionsByAccountID(suite.ctx, 77)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *TransactionRepositoryTestSuite) TestDeleteTransaction() {
	saved, err := suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)

	removed, err := suite.repo.DeleteTransaction(suite.ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal(saved.ID, removed.ID)

	_, err = suite.repo.FindTransactionByID(suite.ctx, saved.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repo.DeleteTransaction(suite.ctx, saved.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestDeleteAllTransactions() {
	_, err := suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)
	_, err = suite.repo.SaveTransaction(suite.ctx, validTxn())
	suite.Require().NoError(err)

	removed, err := suite.repo.DeleteAllTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(removed, 2)

	left, err := suite.repo.FindTransactionsByAccountID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Empty(left)
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}
