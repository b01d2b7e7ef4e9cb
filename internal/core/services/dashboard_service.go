package services

import (
	"context"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"
	"github.com/shopspring/decimal"
)

// dashboardServiceImpl implements the DashboardSvcFacade interface. Every call
// recomputes from the current cheque collection; nothing is memoized, so the
// views can never go stale.
type dashboardServiceImpl struct {
	BaseService
	chequeRepo portsrepo.ChequeReader
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo portsrepo.ChequeReader) portssvc.DashboardSvcFacade {
	return &dashboardServiceImpl{chequeRepo: repo, now: time.Now}
}

var _ portssvc.DashboardSvcFacade = (*dashboardServiceImpl)(nil)

func (s *dashboardServiceImpl) summaries(ctx context.Context) ([]domain.ChequeSummary, error) {
	all, err := s.chequeRepo.FindAllCheques(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cheques for dashboard")
		return nil, err
	}
	out := make([]domain.ChequeSummary, len(all))
	for i := range all {
		out[i] = all[i].Summary()
	}
	return out, nil
}

func (s *dashboardServiceImpl) GetMetrics(ctx context.Context) (*cheques.Metrics, error) {
	coll, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}
	metrics := cheques.Aggregate(cheques.NewTimeRefs(s.now()), coll)
	return &metrics, nil
}

func (s *dashboardServiceImpl) GetPendingCheques(ctx context.Context) ([]domain.ChequeSummary, decimal.Decimal, error) {
	coll, err := s.summaries(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	pending, total := cheques.PendingDue(cheques.NewTimeRefs(s.now()), coll)
	return pending, total, nil
}

func (s *dashboardServiceImpl) GetUpcomingCheques(ctx context.Context) ([]domain.ChequeSummary, error) {
	coll, err := s.summaries(ctx)
	if err != nil {
		return nil, err
	}
	ref := cheques.NewTimeRefs(s.now())
	upcoming := []domain.ChequeSummary{}
	for _, c := range coll {
		if cheques.IsUpcoming(ref, c) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}
