package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeType indicates whether a cheque was issued by us or received from a counterparty.
type ChequeType string

const (
	ChequeIssued   ChequeType = "issued"
	ChequeReceived ChequeType = "received"
)

// ChequeTransactionType indicates the business transaction a cheque settles.
type ChequeTransactionType string

const (
	TransactionSale     ChequeTransactionType = "sale"
	TransactionPurchase ChequeTransactionType = "purchase"
)

// ChequeStatus is the bank-side lifecycle state of a cheque.
type ChequeStatus string

const (
	StatusPending   ChequeStatus = "pending"
	StatusDeposited ChequeStatus = "deposited"
	StatusCleared   ChequeStatus = "cleared"
	StatusBounced   ChequeStatus = "bounced"
	StatusCancelled ChequeStatus = "cancelled"
)

// ChequeStatuses returns the full status set in display order.
func ChequeStatuses() []ChequeStatus {
	return []ChequeStatus{StatusPending, StatusDeposited, StatusCleared, StatusBounced, StatusCancelled}
}

// IsValid reports whether s is one of the known statuses.
func (s ChequeStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDeposited, StatusCleared, StatusBounced, StatusCancelled:
		return true
	}
	return false
}

// Label returns the human-readable name of the status.
func (s ChequeStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDeposited:
		return "Deposited"
	case StatusCleared:
		return "Cleared"
	case StatusBounced:
		return "Bounced"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Description returns a short sentence describing the status.
func (s ChequeStatus) Description() string {
	switch s {
	case StatusPending:
		return "Cheque is pending"
	case StatusDeposited:
		return "Cheque has been deposited"
	case StatusCleared:
		return "Cheque has been cleared by bank"
	case StatusBounced:
		return "Cheque has bounced"
	case StatusCancelled:
		return "Cheque has been cancelled"
	}
	return string(s)
}

// RequiredFieldsFor returns the field paths that become mandatory when a
// cheque is moved to the given status. Currently only a bounce demands extra
// data; every other status imposes no additional requirements.
func RequiredFieldsFor(status ChequeStatus) []string {
	if status == StatusBounced {
		return []string{"bankProcessing.bounceReason"}
	}
	return nil
}

// RelevantFieldsFor returns the optional field paths worth collecting or
// displaying for the given status (bank-side processing dates once the cheque
// has reached the bank).
func RelevantFieldsFor(status ChequeStatus) []string {
	switch status {
	case StatusDeposited:
		return []string{"bankProcessing.depositDate"}
	case StatusCleared:
		return []string{"bankProcessing.depositDate", "bankProcessing.clearanceDate"}
	case StatusBounced:
		return []string{"bankProcessing.depositDate", "bankProcessing.bounceDate", "bankProcessing.bounceReason", "bankProcessing.bankCharges"}
	}
	return nil
}

// CanTransition reports whether a cheque may move between the two statuses.
// No lifecycle graph is enforced: any status may be set from any other via
// the status-update action, only the target status must be a known one.
func CanTransition(from, to ChequeStatus) bool {
	return from.IsValid() && to.IsValid()
}

// RelatedTransaction links a cheque to the sale or purchase it settles.
// Exactly one of CustomerID/SupplierID is populated, determined by
// TransactionType.
type RelatedTransaction struct {
	TransactionID   string                `json:"transactionId"`
	TransactionType ChequeTransactionType `json:"transactionType"`
	CustomerID      string                `json:"customerId,omitempty"`
	SupplierID      string                `json:"supplierId,omitempty"`
}

// ChequeDetails holds the instrument's own stated fields.
type ChequeDetails struct {
	Amount        decimal.Decimal `json:"amount"`
	ChequeDate    time.Time       `json:"chequeDate"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	DrawerName    string          `json:"drawerName"`
	PayeeName     string          `json:"payeeName"`
	DepositDate   *time.Time      `json:"depositDate,omitempty"`
	ClearanceDate *time.Time      `json:"clearanceDate,omitempty"`
}

// BankProcessing records bank-side deposit/clearance/bounce events, distinct
// from the cheque's own stated dates.
type BankProcessing struct {
	DepositDate   *time.Time      `json:"depositDate,omitempty"`
	ClearanceDate *time.Time      `json:"clearanceDate,omitempty"`
	BounceDate    *time.Time      `json:"bounceDate,omitempty"`
	BounceReason  string          `json:"bounceReason,omitempty"`
	BankCharges   decimal.Decimal `json:"bankCharges"`
}

// Cheque is the canonical cheque record tracked through the
// issuance/deposit/clearance/bounce lifecycle.
type Cheque struct {
	ChequeID           string             `json:"chequeID"` // Primary Key (UUID)
	ChequeNumber       string             `json:"chequeNumber,omitempty"`
	Type               ChequeType         `json:"type"`
	RelatedTransaction RelatedTransaction `json:"relatedTransaction"`
	ChequeDetails      ChequeDetails      `json:"chequeDetails"`
	Status             ChequeStatus       `json:"status"`
	BankProcessing     BankProcessing     `json:"bankProcessing"`
	AuditFields
}

// ChequeStatusChange is one entry of a cheque's status history, appended on
// every status-update action.
type ChequeStatusChange struct {
	ChangeID   string       `json:"changeID"`
	ChequeID   string       `json:"chequeID"`
	FromStatus ChequeStatus `json:"fromStatus"`
	ToStatus   ChequeStatus `json:"toStatus"`
	Notes      string       `json:"notes,omitempty"`
	ChangedAt  time.Time    `json:"changedAt"`
	ChangedBy  string       `json:"changedBy"`
}
