package services

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/SscSPs/money_transfer_app/internal/dto"
)

// TransferSvc is the transfer engine facade.
type TransferSvc interface {
	// CreateTransaction dispatches on the request's kind and executes the
	// matching transfer. The only implemented kind is
	// domain.KindTransferBetweenAccounts; any other kind fails with
	// apperrors.ErrUnsupported. On success it returns the debit-side record,
	// the one representing the effect on the initiating account.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}
