package pgsql

import (
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChequeRepo:   newPgxChequeRepository(dbPool),
		SupplierRepo: newPgxSupplierRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
