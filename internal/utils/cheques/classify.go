// Package cheques contains the pure derivation logic over cheque collections:
// due-date classification, dashboard metric aggregation and table filtering.
// Every function takes its inputs explicitly and never mutates them.
package cheques

import (
	"math"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
)

// Bucket is the due-date badge assigned to a cheque.
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketDueSoon  Bucket = "due-soon"
	BucketUpcoming Bucket = "upcoming"
	BucketNormal   Bucket = "normal"
)

// dueSoonWindowDays is the inclusive day window for the due-soon badge.
const dueSoonWindowDays = 3

// upcomingWindowDays is the inclusive day window for the upcoming list.
const upcomingWindowDays = 7

// TimeRefs carries the two distinct time references the dashboard uses.
// They differ deliberately: the pending-due list cutoff is inclusive of the
// whole of today (EndOfDay), while the overdue/due-soon badge counts days
// from the wall-clock instant (Now), so a cheque due today can read
// "0 days" in the morning and sit in the pending list all day.
type TimeRefs struct {
	Now      time.Time // wall-clock instant; drives DaysUntilDue
	EndOfDay time.Time // today at 23:59:59.999; drives the pending-due cutoff
}

// NewTimeRefs derives both references from a single instant.
func NewTimeRefs(now time.Time) TimeRefs {
	y, m, d := now.Date()
	return TimeRefs{
		Now:      now,
		EndOfDay: time.Date(y, m, d, 23, 59, 59, 999000000, now.Location()),
	}
}

// Classification is the badge outcome for a single cheque.
type Classification struct {
	Bucket       Bucket
	DaysUntilDue int // ceiling of (dueDate - now) in days; negative when overdue
}

// DaysUntilDue computes the whole-day distance from now to the due date,
// rounding up so a due date later today counts as 0 and yesterday as -1.
func DaysUntilDue(ref TimeRefs, dueDate time.Time) int {
	return int(math.Ceil(dueDate.Sub(ref.Now).Hours() / 24))
}

// Classify assigns exactly one badge bucket to a cheque. Overdue and due-soon
// are judged against the wall clock; the upcoming bucket additionally requires
// the cheque to still be issued and due within the next seven days.
func Classify(ref TimeRefs, c domain.ChequeSummary) Classification {
	days := DaysUntilDue(ref, c.DueDate)
	switch {
	case days < 0:
		return Classification{Bucket: BucketOverdue, DaysUntilDue: days}
	case days <= dueSoonWindowDays:
		return Classification{Bucket: BucketDueSoon, DaysUntilDue: days}
	case IsUpcoming(ref, c):
		return Classification{Bucket: BucketUpcoming, DaysUntilDue: days}
	default:
		return Classification{Bucket: BucketNormal, DaysUntilDue: days}
	}
}

// IsPendingDue reports whether a cheque belongs in the "pending, due till
// today" list: still issued, with a due date not after the end of today.
func IsPendingDue(ref TimeRefs, c domain.ChequeSummary) bool {
	return c.Status == domain.SummaryIssued && !c.DueDate.After(ref.EndOfDay)
}

// IsUpcoming reports whether a cheque belongs in the seven-day upcoming list:
// still issued, due between now and now+7 days inclusive.
func IsUpcoming(ref TimeRefs, c domain.ChequeSummary) bool {
	if c.Status != domain.SummaryIssued {
		return false
	}
	horizon := ref.Now.Add(upcomingWindowDays * 24 * time.Hour)
	return !c.DueDate.Before(ref.Now) && !c.DueDate.After(horizon)
}
