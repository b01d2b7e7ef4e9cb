package services

import (
	"context"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
)

// ChequeReaderSvc defines read operations for cheque data
type ChequeReaderSvc interface {
	// GetChequeByID retrieves a specific cheque by its ID.
	GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error)

	// ListCheques retrieves a filtered, paginated list of cheques plus the
	// total count matching the filter.
	ListCheques(ctx context.Context, req dto.ListChequesRequest) ([]domain.Cheque, int64, error)

	// GetStatusHistory retrieves a cheque's status changes, oldest first.
	GetStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error)
}

// ChequeWriterSvc defines write operations for cheque data
type ChequeWriterSvc interface {
	// CreateCheque validates and persists a new cheque.
	CreateCheque(ctx context.Context, req dto.SaveChequeRequest, creatorUserID string) (*domain.Cheque, error)

	// UpdateCheque validates and updates an existing cheque.
	UpdateCheque(ctx context.Context, chequeID string, req dto.SaveChequeRequest, updaterUserID string) (*domain.Cheque, error)

	// UpdateChequeStatus moves a cheque to a new status and appends a history entry.
	UpdateChequeStatus(ctx context.Context, chequeID string, req dto.UpdateChequeStatusRequest, updaterUserID string) (*domain.Cheque, error)

	// DeleteCheque removes a cheque.
	DeleteCheque(ctx context.Context, chequeID string) error
}

// ChequeSvcFacade combines all cheque-related service interfaces
// This is a facade for clients that need access to all operations
type ChequeSvcFacade interface {
	ChequeReaderSvc
	ChequeWriterSvc
}
