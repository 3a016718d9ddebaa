package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/google/uuid"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service backed by the given store.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.Total == nil || req.Currency == "" {
		err := fmt.Errorf("%w: to create an account set a currency and a total", apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid account creation request")
		return nil, err
	}
	if !req.Currency.IsValid() {
		err := fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, req.Currency)
		s.LogError(ctx, err, "Invalid account creation request")
		return nil, err
	}

	account := domain.Account{
		AccountID:          uuid.NewString(),
		Currency:           req.Currency,
		Balance:            *req.Total,
		TransactionHistory: []domain.Transaction{},
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			err = fmt.Errorf("%w: to create an account set a currency and a total", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", saved.AccountID),
		slog.String("currency", string(saved.Currency)))
	return saved, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Account retrieved successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
