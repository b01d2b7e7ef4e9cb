package dto

import (
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"
	"github.com/shopspring/decimal"
)

// PendingChequesResponse lists the issued cheques due by the end of today.
type PendingChequesResponse struct {
	Cheques     []domain.ChequeSummary `json:"cheques"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
}

// UpcomingChequeResponse is one entry of the seven-day lookahead list, tagged
// with its due-date badge.
type UpcomingChequeResponse struct {
	domain.ChequeSummary
	DaysUntilDue int            `json:"daysUntilDue"`
	Badge        cheques.Bucket `json:"badge"`
}

// ToUpcomingResponse tags each upcoming cheque with its classification.
func ToUpcomingResponse(ref cheques.TimeRefs, coll []domain.ChequeSummary) []UpcomingChequeResponse {
	res := make([]UpcomingChequeResponse, len(coll))
	for i, c := range coll {
		cls := cheques.Classify(ref, c)
		res[i] = UpcomingChequeResponse{
			ChequeSummary: c,
			DaysUntilDue:  cls.DaysUntilDue,
			Badge:         cls.Bucket,
		}
	}
	return res
}
