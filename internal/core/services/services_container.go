package services

import (
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  NewAccountService(accountRepo),
		Transfer: NewTransferService(accountRepo, txnRepo),
	}
}
