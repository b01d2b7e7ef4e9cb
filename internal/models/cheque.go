package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque is the row shape of the cheques table. The nested domain record is
// flattened into prefixed columns; optional dates are nullable.
type Cheque struct {
	ChequeID     string `db:"cheque_id"`
	ChequeNumber string `db:"cheque_number"`
	Type         string `db:"type"`

	TransactionID   string `db:"transaction_id"`
	TransactionType string `db:"transaction_type"`
	CustomerID      string `db:"customer_id"` // Nullable, exactly one of customer/supplier set
	SupplierID      string `db:"supplier_id"` // Nullable

	Amount        decimal.Decimal `db:"amount"`
	ChequeDate    time.Time       `db:"cheque_date"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	DrawerName    string          `db:"drawer_name"`
	PayeeName     string          `db:"payee_name"`
	DepositDate   *time.Time      `db:"deposit_date"`
	ClearanceDate *time.Time      `db:"clearance_date"`

	Status string `db:"status"`

	BankDepositDate   *time.Time      `db:"bank_deposit_date"`
	BankClearanceDate *time.Time      `db:"bank_clearance_date"`
	BounceDate        *time.Time      `db:"bounce_date"`
	BounceReason      string          `db:"bounce_reason"`
	BankCharges       decimal.Decimal `db:"bank_charges"`

	AuditFields
}

// ChequeStatusChange is the row shape of the cheque_status_history table.
type ChequeStatusChange struct {
	ChangeID   string    `db:"change_id"`
	ChequeID   string    `db:"cheque_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	Notes      string    `db:"notes"`
	ChangedAt  time.Time `db:"changed_at"`
	ChangedBy  string    `db:"changed_by"`
}
