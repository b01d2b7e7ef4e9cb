package cheques

import (
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
)

const isoDateLayout = "2006-01-02"

// FilterSpec holds the compound table filter. Blank fields mean "no
// constraint". Date bounds are ISO yyyy-mm-dd strings and compared
// lexicographically, which is equivalent to chronological order for that
// layout.
type FilterSpec struct {
	DueDateFrom string `form:"dueDateFrom" json:"dueDateFrom"`
	DueDateTo   string `form:"dueDateTo" json:"dueDateTo"`
	Status      string `form:"status" json:"status"`
	SupplierID  string `form:"supplierId" json:"supplierId"`
}

// IsZero reports whether no constraint is set.
func (f FilterSpec) IsZero() bool {
	return f == FilterSpec{}
}

// Matches reports whether a single cheque satisfies every set constraint.
func (f FilterSpec) Matches(c domain.ChequeSummary) bool {
	due := c.DueDate.Format(isoDateLayout)
	if f.DueDateFrom != "" && due < f.DueDateFrom {
		return false
	}
	if f.DueDateTo != "" && due > f.DueDateTo {
		return false
	}
	if f.Status != "" && string(c.Status) != f.Status {
		return false
	}
	if f.SupplierID != "" && c.SupplierID != f.SupplierID {
		return false
	}
	return true
}

// Filter returns the subsequence of cheques satisfying every set constraint,
// preserving the original relative order. The result is always a fresh slice;
// the input collection is never touched.
func Filter(coll []domain.ChequeSummary, f FilterSpec) []domain.ChequeSummary {
	out := make([]domain.ChequeSummary, 0, len(coll))
	if f.IsZero() {
		return append(out, coll...)
	}
	for _, c := range coll {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
