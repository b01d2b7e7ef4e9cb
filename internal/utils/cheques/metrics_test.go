package cheques_test

import (
	"testing"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCollection() []domain.ChequeSummary {
	return []domain.ChequeSummary{
		summary("c1", 2, domain.SummaryIssued, "1000"),
		summary("c2", -4, domain.SummaryIssued, "250.25"),
		summary("c3", 1, domain.SummaryCleared, "400"),
		summary("c4", -1, domain.SummaryBounced, "100"),
		summary("c5", 6, domain.SummaryCancelled, "999"),
	}
}

func TestAggregate(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	m := cheques.Aggregate(ref, fixtureCollection())

	assert.True(t, m.TotalIssued.Equal(decimal.RequireFromString("1250.25")), "got %s", m.TotalIssued)
	assert.True(t, m.TotalCleared.Equal(decimal.NewFromInt(400)))
	assert.True(t, m.TotalOutstanding.Equal(decimal.RequireFromString("1350.25")), "issued + bounced")
	assert.Equal(t, 2, m.ActiveCheques)

	require.Len(t, m.StatusBreakdown, 4)
	byName := map[string]cheques.StatusCount{}
	for _, sc := range m.StatusBreakdown {
		byName[sc.Name] = sc
	}
	assert.Equal(t, 2, byName["Issued"].Value)
	assert.Equal(t, 1, byName["Cleared"].Value)
	assert.Equal(t, 1, byName["Bounced"].Value)
	assert.Equal(t, 1, byName["Cancelled"].Value)
	assert.Equal(t, "#f59e0b", byName["Issued"].Color)
	assert.Equal(t, "#10b981", byName["Cleared"].Color)
	assert.Equal(t, "#ef4444", byName["Bounced"].Color)
	assert.Equal(t, "#6b7280", byName["Cancelled"].Color)

	// Only c1 is issued inside the 7-day window.
	require.Len(t, m.Upcoming, 1)
	assert.Equal(t, "c1", m.Upcoming[0].ChequeID)
	assert.True(t, m.UpcomingTotal.Equal(decimal.NewFromInt(1000)))
}

func TestAggregate_Idempotent(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	coll := fixtureCollection()

	first := cheques.Aggregate(ref, coll)
	second := cheques.Aggregate(ref, coll)

	assert.Equal(t, first, second)
	assert.Equal(t, fixtureCollection(), coll, "input collection must not be mutated")
}

func TestAggregate_Empty(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	m := cheques.Aggregate(ref, nil)

	assert.True(t, m.TotalIssued.IsZero())
	assert.True(t, m.TotalCleared.IsZero())
	assert.True(t, m.TotalOutstanding.IsZero())
	assert.True(t, m.UpcomingTotal.IsZero())
	assert.Zero(t, m.ActiveCheques)
	assert.Empty(t, m.Upcoming)
	require.Len(t, m.StatusBreakdown, 4)
	for _, sc := range m.StatusBreakdown {
		assert.Zero(t, sc.Value)
	}
}

func TestPendingDue(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	coll := fixtureCollection()

	pending, total := cheques.PendingDue(ref, coll)

	// c2 is the only issued cheque due on or before end of today.
	require.Len(t, pending, 1)
	assert.Equal(t, "c2", pending[0].ChequeID)
	assert.True(t, total.Equal(decimal.RequireFromString("250.25")))
}
