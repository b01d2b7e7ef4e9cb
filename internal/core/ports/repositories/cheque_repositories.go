package repositories

import (
	"context"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
)

// ChequeListFilter narrows ListCheques. Zero-valued fields impose no
// constraint; the date range applies to the cheque date.
type ChequeListFilter struct {
	Status      domain.ChequeStatus
	Type        domain.ChequeType
	SupplierID  string
	CustomerID  string
	DueDateFrom *time.Time
	DueDateTo   *time.Time
}

// ChequeReader defines read operations for cheque data
type ChequeReader interface {
	// FindChequeByID retrieves a specific cheque by its ID.
	FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error)

	// ListCheques retrieves a filtered, paginated list of cheques plus the
	// total count matching the filter.
	ListCheques(ctx context.Context, filter ChequeListFilter, limit int, offset int) ([]domain.Cheque, int64, error)

	// FindAllCheques retrieves every cheque, used by the dashboard aggregations.
	FindAllCheques(ctx context.Context) ([]domain.Cheque, error)

	// FindStatusHistory retrieves a cheque's status changes, oldest first.
	FindStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error)
}

// ChequeWriter defines write operations for cheque data
type ChequeWriter interface {
	// SaveCheque persists a new cheque.
	SaveCheque(ctx context.Context, cheque domain.Cheque) error

	// UpdateCheque updates an existing cheque's details.
	UpdateCheque(ctx context.Context, cheque domain.Cheque) error

	// DeleteCheque removes a cheque and its status history.
	DeleteCheque(ctx context.Context, chequeID string) error

	// SaveStatusChange appends an entry to a cheque's status history.
	SaveStatusChange(ctx context.Context, change domain.ChequeStatusChange) error
}

// ChequeRepositoryFacade combines all cheque-related repository interfaces
type ChequeRepositoryFacade interface {
	ChequeReader
	ChequeWriter
}
