package dto

import (
	"encoding/json"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
)

// SaveChequeRequest is the body of cheque create and update calls. Fields
// arrive loosely typed and go through domain.ValidateChequeInput, which
// produces either a normalized record or the full field error map.
type SaveChequeRequest struct {
	ChequeNumber       string                    `json:"chequeNumber"`
	Type               string                    `json:"type"`
	RelatedTransaction RelatedTransactionRequest `json:"relatedTransaction"`
	ChequeDetails      ChequeDetailsRequest      `json:"chequeDetails"`
	Status             string                    `json:"status"`
	BankProcessing     BankProcessingRequest     `json:"bankProcessing"`
}

type RelatedTransactionRequest struct {
	TransactionID   string `json:"transactionId"`
	TransactionType string `json:"transactionType"`
	CustomerID      string `json:"customerId"`
	SupplierID      string `json:"supplierId"`
}

type ChequeDetailsRequest struct {
	Amount        json.Number `json:"amount"`
	ChequeDate    string      `json:"chequeDate"`
	BankName      string      `json:"bankName"`
	AccountNumber string      `json:"accountNumber"`
	DrawerName    string      `json:"drawerName"`
	PayeeName     string      `json:"payeeName"`
	DepositDate   string      `json:"depositDate"`
	ClearanceDate string      `json:"clearanceDate"`
}

type BankProcessingRequest struct {
	DepositDate   string      `json:"depositDate"`
	ClearanceDate string      `json:"clearanceDate"`
	BounceDate    string      `json:"bounceDate"`
	BounceReason  string      `json:"bounceReason"`
	BankCharges   json.Number `json:"bankCharges"`
}

// ToChequeInput converts the request body to the raw field map the validator
// consumes.
func (r SaveChequeRequest) ToChequeInput() domain.ChequeInput {
	return domain.ChequeInput{
		ChequeNumber: r.ChequeNumber,
		Type:         r.Type,
		RelatedTransaction: domain.RelatedTransactionInput{
			TransactionID:   r.RelatedTransaction.TransactionID,
			TransactionType: r.RelatedTransaction.TransactionType,
			CustomerID:      r.RelatedTransaction.CustomerID,
			SupplierID:      r.RelatedTransaction.SupplierID,
		},
		ChequeDetails: domain.ChequeDetailsInput{
			Amount:        r.ChequeDetails.Amount.String(),
			ChequeDate:    r.ChequeDetails.ChequeDate,
			BankName:      r.ChequeDetails.BankName,
			AccountNumber: r.ChequeDetails.AccountNumber,
			DrawerName:    r.ChequeDetails.DrawerName,
			PayeeName:     r.ChequeDetails.PayeeName,
			DepositDate:   r.ChequeDetails.DepositDate,
			ClearanceDate: r.ChequeDetails.ClearanceDate,
		},
		Status: r.Status,
		BankProcessing: domain.BankProcessingInput{
			DepositDate:   r.BankProcessing.DepositDate,
			ClearanceDate: r.BankProcessing.ClearanceDate,
			BounceDate:    r.BankProcessing.BounceDate,
			BounceReason:  r.BankProcessing.BounceReason,
			BankCharges:   r.BankProcessing.BankCharges.String(),
		},
	}
}

// UpdateChequeStatusRequest is the body of the status patch call. Bank
// processing fields ride along so a bounce or clearance can be recorded in
// the same call.
type UpdateChequeStatusRequest struct {
	Status        string      `json:"status" binding:"required"`
	Notes         string      `json:"notes"`
	DepositDate   string      `json:"depositDate"`
	ClearanceDate string      `json:"clearanceDate"`
	BounceDate    string      `json:"bounceDate"`
	BounceReason  string      `json:"bounceReason"`
	BankCharges   json.Number `json:"bankCharges"`
}

// ListChequesRequest defines query parameters for listing cheques.
type ListChequesRequest struct {
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
	Status      string `form:"status"`
	Type        string `form:"type"`
	SupplierID  string `form:"supplierId"`
	CustomerID  string `form:"customerId"`
	DueDateFrom string `form:"dueDateFrom"`
	DueDateTo   string `form:"dueDateTo"`
}

// ChequeResponse defines the data returned for a cheque. Mirrors domain.Cheque
// plus the display label and description of the current status.
type ChequeResponse struct {
	ChequeID           string                    `json:"chequeID"`
	ChequeNumber       string                    `json:"chequeNumber,omitempty"`
	Type               domain.ChequeType         `json:"type"`
	RelatedTransaction domain.RelatedTransaction `json:"relatedTransaction"`
	ChequeDetails      domain.ChequeDetails      `json:"chequeDetails"`
	Status             domain.ChequeStatus       `json:"status"`
	StatusLabel        string                    `json:"statusLabel"`
	StatusDescription  string                    `json:"statusDescription"`
	BankProcessing     domain.BankProcessing     `json:"bankProcessing"`
	CreatedAt          time.Time                 `json:"createdAt"`
	CreatedBy          string                    `json:"createdBy"`
	LastUpdatedAt      time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy      string                    `json:"lastUpdatedBy"`
}

// ToChequeResponse converts a domain.Cheque to ChequeResponse DTO
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeID:           c.ChequeID,
		ChequeNumber:       c.ChequeNumber,
		Type:               c.Type,
		RelatedTransaction: c.RelatedTransaction,
		ChequeDetails:      c.ChequeDetails,
		Status:             c.Status,
		StatusLabel:        c.Status.Label(),
		StatusDescription:  c.Status.Description(),
		BankProcessing:     c.BankProcessing,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
		LastUpdatedAt:      c.LastUpdatedAt,
		LastUpdatedBy:      c.LastUpdatedBy,
	}
}

// ToListChequeResponse converts a slice of domain.Cheque to a slice of ChequeResponse DTOs
func ToListChequeResponse(cheques []domain.Cheque) []ChequeResponse {
	res := make([]ChequeResponse, len(cheques))
	for i, c := range cheques {
		res[i] = ToChequeResponse(&c)
	}
	return res
}

// ChequeStatusChangeResponse defines one entry of a cheque's status history.
type ChequeStatusChangeResponse struct {
	ChangeID   string    `json:"changeID"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	Notes      string    `json:"notes,omitempty"`
	ChangedAt  time.Time `json:"changedAt"`
	ChangedBy  string    `json:"changedBy"`
}

// ToListStatusChangeResponse converts a status history slice to its DTO form.
func ToListStatusChangeResponse(changes []domain.ChequeStatusChange) []ChequeStatusChangeResponse {
	res := make([]ChequeStatusChangeResponse, len(changes))
	for i, ch := range changes {
		res[i] = ChequeStatusChangeResponse{
			ChangeID:   ch.ChangeID,
			FromStatus: string(ch.FromStatus),
			ToStatus:   string(ch.ToStatus),
			Notes:      ch.Notes,
			ChangedAt:  ch.ChangedAt,
			ChangedBy:  ch.ChangedBy,
		}
	}
	return res
}
