package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	"github.com/cashflowhq/cashflow_backend/internal/models"
	"github.com/cashflowhq/cashflow_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChequeRepository struct {
	BaseRepository
}

func newPgxChequeRepository(pool *pgxpool.Pool) portsrepo.ChequeRepositoryFacade {
	return &PgxChequeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChequeRepositoryFacade = (*PgxChequeRepository)(nil)

const chequeInsertColumns = `
	cheque_id, cheque_number, type,
	transaction_id, transaction_type, customer_id, supplier_id,
	amount, cheque_date, bank_name, account_number, drawer_name, payee_name,
	deposit_date, clearance_date, status,
	bank_deposit_date, bank_clearance_date, bounce_date, bounce_reason, bank_charges,
	created_at, created_by, last_updated_at, last_updated_by
`

// Optional reference columns are NULL in the table; they come back as empty
// strings on the model.
const chequeSelectColumns = `
	cheque_id, cheque_number, type,
	transaction_id, transaction_type,
	COALESCE(customer_id, '') AS customer_id, COALESCE(supplier_id, '') AS supplier_id,
	amount, cheque_date, bank_name, account_number, drawer_name, payee_name,
	deposit_date, clearance_date, status,
	bank_deposit_date, bank_clearance_date, bounce_date, bounce_reason, bank_charges,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxChequeRepository) SaveCheque(ctx context.Context, cheque domain.Cheque) error {
	m := mapping.ToModelCheque(cheque)
	query := `
		INSERT INTO cheques (` + chequeInsertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ChequeID, m.ChequeNumber, m.Type,
		m.TransactionID, m.TransactionType, nullable(m.CustomerID), nullable(m.SupplierID),
		m.Amount, m.ChequeDate, m.BankName, m.AccountNumber, m.DrawerName, m.PayeeName,
		m.DepositDate, m.ClearanceDate, m.Status,
		m.BankDepositDate, m.BankClearanceDate, m.BounceDate, m.BounceReason, m.BankCharges,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cheque %s already exists: %w", m.ChequeID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save cheque "+m.ChequeID, err)
	}
	return nil
}

func (r *PgxChequeRepository) UpdateCheque(ctx context.Context, cheque domain.Cheque) error {
	m := mapping.ToModelCheque(cheque)
	query := `
		UPDATE cheques SET
			cheque_number = $1, type = $2,
			transaction_id = $3, transaction_type = $4, customer_id = $5, supplier_id = $6,
			amount = $7, cheque_date = $8, bank_name = $9, account_number = $10,
			drawer_name = $11, payee_name = $12, deposit_date = $13, clearance_date = $14,
			status = $15, bank_deposit_date = $16, bank_clearance_date = $17,
			bounce_date = $18, bounce_reason = $19, bank_charges = $20,
			last_updated_at = $21, last_updated_by = $22
		WHERE cheque_id = $23;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ChequeNumber, m.Type,
		m.TransactionID, m.TransactionType, nullable(m.CustomerID), nullable(m.SupplierID),
		m.Amount, m.ChequeDate, m.BankName, m.AccountNumber,
		m.DrawerName, m.PayeeName, m.DepositDate, m.ClearanceDate,
		m.Status, m.BankDepositDate, m.BankClearanceDate,
		m.BounceDate, m.BounceReason, m.BankCharges,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ChequeID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cheque "+m.ChequeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChequeRepository) DeleteCheque(ctx context.Context, chequeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM cheque_status_history WHERE cheque_id = $1;`, chequeID); err != nil {
		return apperrors.NewAppError(500, "failed to delete status history for cheque "+chequeID, err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM cheques WHERE cheque_id = $1;`, chequeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete cheque "+chequeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxChequeRepository) FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	query := `SELECT ` + chequeSelectColumns + ` FROM cheques WHERE cheque_id = $1;`
	rows, err := r.Pool.Query(ctx, query, chequeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cheque "+chequeID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Cheque])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect cheque row", err)
	}
	cheque := mapping.ToDomainCheque(m)
	return &cheque, nil
}

func (r *PgxChequeRepository) ListCheques(ctx context.Context, filter portsrepo.ChequeListFilter, limit int, offset int) ([]domain.Cheque, int64, error) {
	conditions := []string{}
	args := []any{}

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, clause+"$"+strconv.Itoa(len(args)))
	}

	if filter.Status != "" {
		addCondition("status = ", string(filter.Status))
	}
	if filter.Type != "" {
		addCondition("type = ", string(filter.Type))
	}
	if filter.SupplierID != "" {
		addCondition("supplier_id = ", filter.SupplierID)
	}
	if filter.CustomerID != "" {
		addCondition("customer_id = ", filter.CustomerID)
	}
	if filter.DueDateFrom != nil {
		addCondition("cheque_date >= ", *filter.DueDateFrom)
	}
	if filter.DueDateTo != nil {
		addCondition("cheque_date <= ", *filter.DueDateTo)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM cheques`+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count cheques", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + chequeSelectColumns + ` FROM cheques` + where +
		` ORDER BY cheque_date DESC, cheque_id LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query cheques", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Cheque])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to collect cheque rows", err)
	}

	return mapping.ToDomainChequeSlice(ms), total, nil
}

func (r *PgxChequeRepository) FindAllCheques(ctx context.Context) ([]domain.Cheque, error) {
	query := `SELECT ` + chequeSelectColumns + ` FROM cheques ORDER BY cheque_date, cheque_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cheques", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Cheque])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect cheque rows", err)
	}
	return mapping.ToDomainChequeSlice(ms), nil
}

func (r *PgxChequeRepository) SaveStatusChange(ctx context.Context, change domain.ChequeStatusChange) error {
	query := `
		INSERT INTO cheque_status_history (change_id, cheque_id, from_status, to_status, notes, changed_at, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		change.ChangeID, change.ChequeID, string(change.FromStatus), string(change.ToStatus),
		change.Notes, change.ChangedAt, change.ChangedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save status change for cheque "+change.ChequeID, err)
	}
	return nil
}

func (r *PgxChequeRepository) FindStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error) {
	query := `
		SELECT change_id, cheque_id, from_status, to_status, notes, changed_at, changed_by
		FROM cheque_status_history
		WHERE cheque_id = $1
		ORDER BY changed_at;
	`
	rows, err := r.Pool.Query(ctx, query, chequeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query status history for cheque "+chequeID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChequeStatusChange])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect status history rows", err)
	}

	changes := make([]domain.ChequeStatusChange, len(ms))
	for i, m := range ms {
		changes[i] = mapping.ToDomainStatusChange(m)
	}
	return changes, nil
}

// nullable turns an empty string into a NULL parameter so optional foreign
// key columns stay NULL instead of storing empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
