package services

import (
	"context"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"
	"github.com/shopspring/decimal"
)

// DashboardSvcFacade exposes the derived views over the cheque collection.
type DashboardSvcFacade interface {
	// GetMetrics computes the dashboard metrics over all cheques.
	GetMetrics(ctx context.Context) (*cheques.Metrics, error)

	// GetPendingCheques returns issued cheques due by end of today plus their
	// summed amount.
	GetPendingCheques(ctx context.Context) ([]domain.ChequeSummary, decimal.Decimal, error)

	// GetUpcomingCheques returns issued cheques due within the next week.
	GetUpcomingCheques(ctx context.Context) ([]domain.ChequeSummary, error)
}
