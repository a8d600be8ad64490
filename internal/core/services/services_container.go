package services

import (
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Order matters: the first applicable mapper wins.
	mappers := NewPaymentMapperRegistry(
		NewCustomerPaymentMapper(repos.PaymentRepo, repos.IDMapRepo),
		NewSupplierPaymentMapper(repos.PaymentRepo, repos.IDMapRepo),
	)

	return &portssvc.ServiceContainer{
		Sync: NewSyncService(repos.PaymentRepo, repos.IDMapRepo, mappers),
	}
}
