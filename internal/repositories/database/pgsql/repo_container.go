package pgsql

import (
	portsrepo "github.com/SscSPs/connec_payment_sync/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PaymentRepo: newPgxPaymentRepository(dbPool),
		IDMapRepo:   newPgxIDMapRepository(dbPool),
	}
}
