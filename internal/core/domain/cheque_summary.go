package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryStatus is the status set of the flat dashboard view of a cheque.
// It is coarser than ChequeStatus: anything still in flight counts as issued.
type SummaryStatus string

const (
	SummaryIssued    SummaryStatus = "issued"
	SummaryCleared   SummaryStatus = "cleared"
	SummaryBounced   SummaryStatus = "bounced"
	SummaryCancelled SummaryStatus = "cancelled"
)

// ChequeSummary is the flat cheque shape consumed by the dashboard:
// due-date classification, metric aggregation and table filtering all operate
// on this view rather than on the nested record.
type ChequeSummary struct {
	ChequeID     string          `json:"chequeID"`
	ChequeNumber string          `json:"chequeNumber"`
	SupplierID   string          `json:"supplierId"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    time.Time       `json:"issueDate"`
	DueDate      time.Time       `json:"dueDate"`
	Status       SummaryStatus   `json:"status"`
	Description  string          `json:"description,omitempty"`
}

// Summary projects the nested cheque record down to the flat dashboard view.
// Pending and deposited cheques are both "issued" for dashboard purposes; the
// cheque date doubles as the due date since the nested record carries no
// separate due date.
func (c *Cheque) Summary() ChequeSummary {
	return ChequeSummary{
		ChequeID:     c.ChequeID,
		ChequeNumber: c.ChequeNumber,
		SupplierID:   c.RelatedTransaction.SupplierID,
		Amount:       c.ChequeDetails.Amount,
		IssueDate:    c.ChequeDetails.ChequeDate,
		DueDate:      c.ChequeDetails.ChequeDate,
		Status:       c.Status.summaryStatus(),
		Description:  c.BankProcessing.BounceReason,
	}
}

func (s ChequeStatus) summaryStatus() SummaryStatus {
	switch s {
	case StatusCleared:
		return SummaryCleared
	case StatusBounced:
		return SummaryBounced
	case StatusCancelled:
		return SummaryCancelled
	default:
		return SummaryIssued
	}
}
