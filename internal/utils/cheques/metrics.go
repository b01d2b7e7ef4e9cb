package cheques

import (
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatusCount is one slice of the status breakdown chart, tagged with its
// fixed display color.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Metrics is the dashboard summary computed over a cheque collection.
type Metrics struct {
	TotalIssued      decimal.Decimal        `json:"totalIssued"`
	TotalCleared     decimal.Decimal        `json:"totalCleared"`
	TotalOutstanding decimal.Decimal        `json:"totalOutstanding"`
	ActiveCheques    int                    `json:"activeCheques"`
	StatusBreakdown  []StatusCount          `json:"statusBreakdown"`
	Upcoming         []domain.ChequeSummary `json:"upcoming"`
	UpcomingTotal    decimal.Decimal        `json:"upcomingTotal"`
}

// Aggregate computes the dashboard metrics as plain reductions over the
// collection. An empty collection yields zero sums and zero-valued breakdown
// slices; the input is never modified.
func Aggregate(ref TimeRefs, coll []domain.ChequeSummary) Metrics {
	m := Metrics{
		TotalIssued:      decimal.Zero,
		TotalCleared:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
		UpcomingTotal:    decimal.Zero,
		Upcoming:         []domain.ChequeSummary{},
	}

	counts := map[domain.SummaryStatus]int{}
	for _, c := range coll {
		counts[c.Status]++
		switch c.Status {
		case domain.SummaryIssued:
			m.TotalIssued = m.TotalIssued.Add(c.Amount)
			m.TotalOutstanding = m.TotalOutstanding.Add(c.Amount)
			m.ActiveCheques++
		case domain.SummaryCleared:
			m.TotalCleared = m.TotalCleared.Add(c.Amount)
		case domain.SummaryBounced:
			m.TotalOutstanding = m.TotalOutstanding.Add(c.Amount)
		}
		if IsUpcoming(ref, c) {
			m.Upcoming = append(m.Upcoming, c)
			m.UpcomingTotal = m.UpcomingTotal.Add(c.Amount)
		}
	}

	m.StatusBreakdown = []StatusCount{
		{Name: "Issued", Value: counts[domain.SummaryIssued], Color: "#f59e0b"},
		{Name: "Cleared", Value: counts[domain.SummaryCleared], Color: "#10b981"},
		{Name: "Bounced", Value: counts[domain.SummaryBounced], Color: "#ef4444"},
		{Name: "Cancelled", Value: counts[domain.SummaryCancelled], Color: "#6b7280"},
	}
	return m
}

// PendingDue returns the cheques still issued and due up to the end of today,
// in original order, together with their summed amount.
func PendingDue(ref TimeRefs, coll []domain.ChequeSummary) ([]domain.ChequeSummary, decimal.Decimal) {
	pending := []domain.ChequeSummary{}
	total := decimal.Zero
	for _, c := range coll {
		if IsPendingDue(ref, c) {
			pending = append(pending, c)
			total = total.Add(c.Amount)
		}
	}
	return pending, total
}
