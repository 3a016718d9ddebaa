package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type TransferHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransferService
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()

	suite.mockService = new(MockTransferService)
	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransferRoutes(v1, suite.mockService)
}

func (suite *TransferHandlerTestSuite) performTransfer(sourceID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+sourceID+"/transactions/transfer", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_Success() {
	debit := &domain.Transaction{
		ID:                    2,
		OwnerAccountID:        1,
		CounterpartyAccountID: 2,
		Type:                  domain.TransferBetweenAccounts,
		Description:           "Transfer",
		Amount:                decimal.NewFromInt(-100),
		Currency:              domain.USD,
		CreatedAt:             time.Now(),
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Kind == domain.KindTransferBetweenAccounts &&
			req.SourceAccountID == "account-1" &&
			req.DestinationAccountID == "account-2" &&
			req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(100))
	})).Return(debit, nil).Once()

	w := suite.performTransfer("account-1", gin.H{
		"destinationAccountId": "account-2",
		"amount":               "100",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.ID)
	suite.Equal(domain.TransferBetweenAccounts, resp.Type)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(-100)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_MissingDestination() {
	w := suite.performTransfer("account-1", gin.H{
		"amount": "100",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_MissingAmount() {
	w := suite.performTransfer("account-1", gin.H{
		"destinationAccountId": "account-2",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_ValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.performTransfer("account-1", gin.H{
		"destinationAccountId": "account-1",
		"amount":               "100",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_AccountNotFound() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performTransfer("missing", gin.H{
		"destinationAccountId": "account-2",
		"amount":               "100",
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestTransferMoney_TransferFailed() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrTransferFailed).Once()

	w := suite.performTransfer("account-1", gin.H{
		"destinationAccountId": "account-2",
		"amount":               "100000",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransferHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
