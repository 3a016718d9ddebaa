package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
)

const transferDescription = "Transfer"

// transferServiceImpl is the transfer engine. It orchestrates a single
// transfer as a unit of work spanning the account and transaction stores:
// validates, loads accounts, checks business rules, builds the mirrored
// transaction pair, mutates balances and persists, rolling back the
// transaction records on partial failure.
type transferServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

// NewTransferService creates a new transfer engine over the given stores.
func NewTransferService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) portssvc.TransferSvc {
	return &transferServiceImpl{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.TransferSvc = (*transferServiceImpl)(nil)

// CreateTransaction dispatches on the requested kind. Exactly one kind is
// implemented; everything else is rejected explicitly rather than guessed at.
func (s *transferServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	switch req.Kind {
	case domain.KindTransferBetweenAccounts:
		return s.createTransfer(ctx, req)
	default:
		err := fmt.Errorf("%w: %q", apperrors.ErrUnsupported, req.Kind)
		s.LogWarn(ctx, "Rejected transaction of unsupported kind", slog.String("kind", string(req.Kind)))
		return nil, err
	}
}

// createTransfer moves req.Amount from the source to the destination account
// with all-or-nothing semantics. The mirrored transaction records are
// persisted before the balances: until UpdateAccounts accepts the batch no
// balance change is visible, so a conflict only ever requires deleting the
// just-saved records, never reverting a stored balance.
func (s *transferServiceImpl) createTransfer(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateTransferRequest(req); err != nil {
		s.LogWarn(ctx, "Invalid transfer request", slog.String("error", err.Error()))
		return nil, err
	}

	source, err := s.loadAccount(ctx, req.SourceAccountID)
	if err != nil {
		return nil, err
	}
	destination, err := s.loadAccount(ctx, req.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	amount := *req.Amount
	if source.Currency != destination.Currency {
		err := fmt.Errorf("%w: accounts have different currencies", apperrors.ErrTransferFailed)
		s.LogWarn(ctx, "Transfer rejected",
			slog.String("source_currency", string(source.Currency)),
			slog.String("destination_currency", string(destination.Currency)))
		return nil, err
	}
	if source.Balance.LessThan(amount) {
		err := fmt.Errorf("%w: not enough money on account %s", apperrors.ErrTransferFailed, source.AccountID)
		s.LogWarn(ctx, "Transfer rejected",
			slog.String("source_account_id", source.AccountID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	credit := domain.Transaction{
		OwnerAccountID:        destination.ID,
		CounterpartyAccountID: source.ID,
		Type:                  domain.TransferBetweenAccounts,
		Description:           transferDescription,
		Amount:                amount,
		Currency:              source.Currency,
	}
	debit := domain.Transaction{
		OwnerAccountID:        source.ID,
		CounterpartyAccountID: destination.ID,
		Type:                  domain.TransferBetweenAccounts,
		Description:           transferDescription,
		Amount:                amount.Neg(),
		Currency:              source.Currency,
	}

	source.Balance = source.Balance.Sub(amount)
	destination.Balance = destination.Balance.Add(amount)

	savedCredit, err := s.txnRepo.SaveTransaction(ctx, credit)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist credit record")
		return nil, s.rollback(ctx, nil)
	}
	savedDebit, err := s.txnRepo.SaveTransaction(ctx, debit)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist debit record")
		return nil, s.rollback(ctx, []*domain.Transaction{savedCredit})
	}

	// Each account now carries persisted state plus exactly one new
	// transaction, which is the precondition UpdateAccounts checks.
	destination.TransactionHistory = append(destination.TransactionHistory, *savedCredit)
	source.TransactionHistory = append(source.TransactionHistory, *savedDebit)

	if !s.accountRepo.UpdateAccounts(ctx, []domain.Account{*source, *destination}) {
		s.LogWarn(ctx, "Account update conflict, rolling back transfer",
			slog.String("source_account_id", source.AccountID),
			slog.String("destination_account_id", destination.AccountID))
		return nil, s.rollback(ctx, []*domain.Transaction{savedCredit, savedDebit})
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("source_account_id", source.AccountID),
		slog.String("destination_account_id", destination.AccountID),
		slog.String("amount", amount.String()),
		slog.Int64("transaction_id", savedDebit.ID))
	return savedDebit, nil
}

func (s *transferServiceImpl) loadAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account with id %s not found: %w", accountID, apperrors.ErrNotFound)
	}
	return account, nil
}

// rollback deletes whichever transaction records this attempt already saved
// and reports the transfer as failed. It is fire-and-forget: delete failures
// are logged but not reported separately.
func (s *transferServiceImpl) rollback(ctx context.Context, saved []*domain.Transaction) error {
	for _, txn := range saved {
		if txn == nil {
			continue
		}
		if _, err := s.txnRepo.DeleteTransaction(ctx, txn.ID); err != nil {
			s.LogError(ctx, err, "Rollback failed to delete transaction",
				slog.Int64("transaction_id", txn.ID))
		}
	}
	return fmt.Errorf("%w: transfer rolled back", apperrors.ErrTransferFailed)
}

func validateTransferRequest(req dto.CreateTransactionRequest) error {
	if req.DestinationAccountID == "" || req.Amount == nil {
		return fmt.Errorf("%w: transfer needs a destination account id and an amount", apperrors.ErrValidation)
	}
	if req.DestinationAccountID == req.SourceAccountID {
		return fmt.Errorf("%w: transfer within the same account is not supported", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	return nil
}
