package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	"github.com/cashflowhq/cashflow_backend/internal/models"
	"github.com/cashflowhq/cashflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierSelectColumns = `
	supplier_id, name, email, phone, address, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierSelectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Email, m.Phone, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("supplier %s already exists: %w", m.SupplierID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save supplier "+m.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $1, email = $2, phone = $3, address = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE supplier_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Email, m.Phone, m.Address, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.SupplierID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update supplier "+m.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeactivateSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	query := `
		UPDATE suppliers
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE supplier_id = $3 AND is_active;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, supplierID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate supplier "+supplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierSelectColumns + ` FROM suppliers WHERE supplier_id = $1;`
	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query supplier "+supplierID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect supplier row", err)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count suppliers", err)
	}

	query := `SELECT ` + supplierSelectColumns + ` FROM suppliers ORDER BY name, supplier_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query suppliers", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to collect supplier rows", err)
	}

	return mapping.ToDomainSupplierSlice(ms), total, nil
}
