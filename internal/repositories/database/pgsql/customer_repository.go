package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	"github.com/cashflowhq/cashflow_backend/internal/models"
	"github.com/cashflowhq/cashflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerSelectColumns = `
	customer_id, customer_code, name, phone, email, address, identification_number,
	credit_rating, credit_limit, payment_terms, risk_category, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerSelectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.CustomerCode, m.Name, m.Phone, m.Email, m.Address, m.IdentificationNumber,
		m.CreditRating, m.CreditLimit, m.PaymentTerms, m.RiskCategory, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer code %s already exists: %w", m.CustomerCode, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save customer "+m.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4, identification_number = $5,
			credit_rating = $6, credit_limit = $7, payment_terms = $8, risk_category = $9,
			status = $10, last_updated_at = $11, last_updated_by = $12
		WHERE customer_id = $13;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Phone, m.Email, m.Address, m.IdentificationNumber,
		m.CreditRating, m.CreditLimit, m.PaymentTerms, m.RiskCategory,
		m.Status, m.LastUpdatedAt, m.LastUpdatedBy, m.CustomerID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update customer "+m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete customer "+customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return r.findOne(ctx, `WHERE customer_id = $1`, customerID)
}

func (r *PgxCustomerRepository) FindCustomerByCode(ctx context.Context, customerCode string) (*domain.Customer, error) {
	return r.findOne(ctx, `WHERE customer_code = $1`, customerCode)
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, where string, arg any) (*domain.Customer, error) {
	query := `SELECT ` + customerSelectColumns + ` FROM customers ` + where + `;`
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customer", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect customer row", err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count customers", err)
	}

	query := `SELECT ` + customerSelectColumns + ` FROM customers ORDER BY customer_code LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query customers", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Customer])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to collect customer rows", err)
	}

	return mapping.ToDomainCustomerSlice(ms), total, nil
}
