package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/core/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	total := decimal.NewFromInt(500)
	var saved domain.Account
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
			saved.ID = 1
		}).
		Return(&saved, nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Total:    &total,
		Currency: domain.EUR,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.EUR, created.Currency)
	suite.True(created.Balance.Equal(total))
	suite.NotEmpty(created.AccountID)
	// The service assigns a fresh uuid as the external identifier.
	_, parseErr := uuid.Parse(created.AccountID)
	suite.NoError(parseErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingTotal() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Currency: domain.USD,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingCurrency() {
	total := decimal.NewFromInt(500)
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Total: &total,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	total := decimal.NewFromInt(500)
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Total:    &total,
		Currency: domain.Currency("DOGE"),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RepositoryError() {
	total := decimal.NewFromInt(500)
	repoErr := errors.New("store unavailable")
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Return(nil, repoErr).Once()

	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Total:    &total,
		Currency: domain.USD,
	})

	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	account := &domain.Account{
		ID:        1,
		AccountID: "account-1",
		Currency:  domain.USD,
		Balance:   decimal.NewFromInt(1000),
	}
	suite.mockRepo.On("FindAccountByID", suite.ctx, "account-1").Return(account, nil).Once()

	found, err := suite.service.GetAccountByID(suite.ctx, "account-1")

	suite.Require().NoError(err)
	suite.Equal(account, found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	accounts := []domain.Account{
		{ID: 1, AccountID: "account-1", Currency: domain.USD, Balance: decimal.NewFromInt(1000)},
		{ID: 2, AccountID: "account-2", Currency: domain.USD, Balance: decimal.NewFromInt(2000)},
	}
	suite.mockRepo.On("ListAccounts", suite.ctx).Return(accounts, nil).Once()

	listed, err := suite.service.ListAccounts(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(accounts, listed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyStoreReturnsEmptySlice() {
	suite.mockRepo.On("ListAccounts", suite.ctx).Return([]domain.Account(nil), nil).Once()

	listed, err := suite.service.ListAccounts(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(listed)
	suite.Empty(listed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepositoryError() {
	repoErr := errors.New("store unavailable")
	suite.mockRepo.On("ListAccounts", suite.ctx).Return(nil, repoErr).Once()

	_, err := suite.service.ListAccounts(suite.ctx)

	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
