package cheques_test

import (
	"testing"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// noon is an arbitrary mid-day reference so day arithmetic is unambiguous.
var noon = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func summary(id string, dueOffsetDays int, status domain.SummaryStatus, amount string) domain.ChequeSummary {
	return domain.ChequeSummary{
		ChequeID:   id,
		SupplierID: "sup-1",
		Amount:     decimal.RequireFromString(amount),
		IssueDate:  noon.AddDate(0, 0, dueOffsetDays-30),
		DueDate:    noon.AddDate(0, 0, dueOffsetDays),
		Status:     status,
	}
}

func TestNewTimeRefs(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	assert.Equal(t, noon, ref.Now)
	assert.Equal(t, time.Date(2025, 5, 10, 23, 59, 59, 999000000, time.UTC), ref.EndOfDay)
}

func TestDaysUntilDue(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due later today", noon.Add(6 * time.Hour), 1},
		{"due exactly now", noon, 0},
		{"due yesterday noon", noon.AddDate(0, 0, -1), -1},
		{"due in three days", noon.AddDate(0, 0, 3), 3},
		{"due ten days ago", noon.AddDate(0, 0, -10), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cheques.DaysUntilDue(ref, tt.due))
		})
	}
}

func TestClassify(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	tests := []struct {
		name     string
		c        domain.ChequeSummary
		bucket   cheques.Bucket
		daysSign int // -1 negative, 0 zero, +1 positive
	}{
		{"overdue", summary("a", -2, domain.SummaryIssued, "100"), cheques.BucketOverdue, -1},
		{"due today is due-soon", summary("b", 0, domain.SummaryIssued, "100"), cheques.BucketDueSoon, 0},
		{"due in three days is due-soon", summary("c", 3, domain.SummaryIssued, "100"), cheques.BucketDueSoon, 1},
		{"due in five days is upcoming", summary("d", 5, domain.SummaryIssued, "100"), cheques.BucketUpcoming, 1},
		{"due in five days but cleared is normal", summary("e", 5, domain.SummaryCleared, "100"), cheques.BucketNormal, 1},
		{"due far out is normal", summary("f", 20, domain.SummaryIssued, "100"), cheques.BucketNormal, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cheques.Classify(ref, tt.c)
			assert.Equal(t, tt.bucket, got.Bucket)
			switch tt.daysSign {
			case -1:
				assert.Negative(t, got.DaysUntilDue)
			case 0:
				assert.Zero(t, got.DaysUntilDue)
			case 1:
				assert.Positive(t, got.DaysUntilDue)
			}
		})
	}
}

// The pending-due list uses the end-of-day cutoff while the badge uses the
// wall clock, so a cheque due later today is pending-due yet not overdue.
func TestPendingDueUsesEndOfDayCutoff(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	dueTonight := domain.ChequeSummary{
		Status:  domain.SummaryIssued,
		DueDate: time.Date(2025, 5, 10, 20, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(50),
	}

	assert.True(t, cheques.IsPendingDue(ref, dueTonight))
	assert.Equal(t, cheques.BucketDueSoon, cheques.Classify(ref, dueTonight).Bucket)

	dueTomorrow := dueTonight
	dueTomorrow.DueDate = dueTomorrow.DueDate.AddDate(0, 0, 1)
	assert.False(t, cheques.IsPendingDue(ref, dueTomorrow))

	cleared := dueTonight
	cleared.Status = domain.SummaryCleared
	assert.False(t, cheques.IsPendingDue(ref, cleared))
}

// Five cheques spanning today-10 .. today+10: the issued ones inside the
// 7-day window land in upcoming and the issued past-due ones in overdue.
func TestClassify_WindowSpread(t *testing.T) {
	ref := cheques.NewTimeRefs(noon)
	coll := []domain.ChequeSummary{
		summary("past", -10, domain.SummaryIssued, "100"),
		summary("recent", -1, domain.SummaryIssued, "200"),
		summary("soon", 5, domain.SummaryIssued, "300"),
		summary("far", 10, domain.SummaryCleared, "400"),
		summary("cancelled", 2, domain.SummaryCancelled, "500"),
	}

	var upcoming, overdue []string
	for _, c := range coll {
		if cheques.IsUpcoming(ref, c) {
			upcoming = append(upcoming, c.ChequeID)
		}
		if cheques.Classify(ref, c).Bucket == cheques.BucketOverdue {
			overdue = append(overdue, c.ChequeID)
		}
	}

	assert.Equal(t, []string{"soon"}, upcoming)
	assert.Equal(t, []string{"past", "recent"}, overdue)
}
