package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// objectIDPattern matches the 24-hex-character identifiers carried by
// transaction references, which originate in the external sales system.
// Customer and supplier references point at rows this system creates, so
// they are validated as UUIDs instead.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

const chequeDateLayout = "2006-01-02"

// ChequeInput is the raw field map collected from a form or request body.
// Every field is a string; normalization and type conversion happen during
// validation so that a bad value becomes a field error instead of a panic or
// a silent zero value.
type ChequeInput struct {
	ChequeNumber       string
	Type               string
	RelatedTransaction RelatedTransactionInput
	ChequeDetails      ChequeDetailsInput
	Status             string
	BankProcessing     BankProcessingInput
}

type RelatedTransactionInput struct {
	TransactionID   string
	TransactionType string
	CustomerID      string
	SupplierID      string
}

type ChequeDetailsInput struct {
	Amount        string
	ChequeDate    string
	BankName      string
	AccountNumber string
	DrawerName    string
	PayeeName     string
	DepositDate   string
	ClearanceDate string
}

type BankProcessingInput struct {
	DepositDate   string
	ClearanceDate string
	BounceDate    string
	BounceReason  string
	BankCharges   string
}

// ValidateChequeInput validates a raw cheque field map and either produces a
// normalized Cheque record or the full map of violations, keyed by field path.
// All rules are evaluated independently; nothing short-circuits. The function
// is pure: it never mutates its input and never returns a partial record
// alongside errors.
func ValidateChequeInput(in ChequeInput) (*Cheque, apperrors.FieldErrors) {
	errs := apperrors.FieldErrors{}

	chequeNumber := strings.TrimSpace(in.ChequeNumber)
	if len(chequeNumber) > 50 {
		errs.Add("chequeNumber", "Cheque number cannot exceed 50 characters")
	}

	chequeType := ChequeType(strings.ToLower(strings.TrimSpace(in.Type)))
	if chequeType == "" {
		errs.Add("type", "Cheque type is required")
	} else if chequeType != ChequeIssued && chequeType != ChequeReceived {
		errs.Add("type", "Cheque type must be either issued or received")
	}

	related := validateRelatedTransaction(in.RelatedTransaction, errs)

	status := ChequeStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if status == "" {
		status = StatusPending
	} else if !status.IsValid() {
		errs.Add("status", "Status must be one of pending, deposited, cleared, bounced, cancelled")
	}

	details, chequeDate := validateChequeDetails(in.ChequeDetails, errs)
	processing := validateBankProcessing(in.BankProcessing, status, chequeDate, errs)

	if errs.HasErrors() {
		return nil, errs
	}

	return &Cheque{
		ChequeNumber:       chequeNumber,
		Type:               chequeType,
		RelatedTransaction: related,
		ChequeDetails:      details,
		Status:             status,
		BankProcessing:     processing,
	}, nil
}

func validateRelatedTransaction(in RelatedTransactionInput, errs apperrors.FieldErrors) RelatedTransaction {
	out := RelatedTransaction{}

	txnID := strings.TrimSpace(in.TransactionID)
	if txnID == "" {
		errs.Add("relatedTransaction.transactionId", "Transaction ID is required")
	} else if !objectIDPattern.MatchString(txnID) {
		errs.Add("relatedTransaction.transactionId", "Transaction ID must be a valid ObjectId (24 characters)")
	} else {
		out.TransactionID = txnID
	}

	txnType := ChequeTransactionType(strings.ToLower(strings.TrimSpace(in.TransactionType)))
	switch txnType {
	case "":
		errs.Add("relatedTransaction.transactionType", "Transaction type is required")
	case TransactionSale:
		out.TransactionType = TransactionSale
		customerID := strings.TrimSpace(in.CustomerID)
		if customerID == "" {
			errs.Add("relatedTransaction.customerId", "Customer is required for sale transactions")
		} else if uuid.Validate(customerID) != nil {
			errs.Add("relatedTransaction.customerId", "Customer ID must be a valid UUID")
		} else {
			out.CustomerID = customerID
		}
	case TransactionPurchase:
		out.TransactionType = TransactionPurchase
		supplierID := strings.TrimSpace(in.SupplierID)
		if supplierID == "" {
			errs.Add("relatedTransaction.supplierId", "Supplier is required for purchase transactions")
		} else if uuid.Validate(supplierID) != nil {
			errs.Add("relatedTransaction.supplierId", "Supplier ID must be a valid UUID")
		} else {
			out.SupplierID = supplierID
		}
	default:
		errs.Add("relatedTransaction.transactionType", "Transaction type must be either sale or purchase")
	}

	return out
}

func validateChequeDetails(in ChequeDetailsInput, errs apperrors.FieldErrors) (ChequeDetails, *time.Time) {
	out := ChequeDetails{}

	amountStr := strings.TrimSpace(in.Amount)
	if amountStr == "" {
		errs.Add("chequeDetails.amount", "Amount is required")
	} else if amount, err := decimal.NewFromString(amountStr); err != nil {
		errs.Add("chequeDetails.amount", "Amount must be a valid positive number")
	} else if amount.LessThan(decimal.NewFromFloat(0.01)) {
		errs.Add("chequeDetails.amount", "Amount must be at least 0.01")
	} else {
		out.Amount = amount
	}

	chequeDate := parseDateField(in.ChequeDate, "chequeDetails.chequeDate", "Cheque date", true, errs)
	if chequeDate != nil {
		out.ChequeDate = *chequeDate
	}

	out.BankName = requiredName(in.BankName, "chequeDetails.bankName", "Bank name", 100, errs)
	out.AccountNumber = requiredName(in.AccountNumber, "chequeDetails.accountNumber", "Account number", 50, errs)
	out.DrawerName = requiredName(in.DrawerName, "chequeDetails.drawerName", "Drawer name", 100, errs)
	out.PayeeName = requiredName(in.PayeeName, "chequeDetails.payeeName", "Payee name", 100, errs)

	out.DepositDate = parseDateField(in.DepositDate, "chequeDetails.depositDate", "Deposit date", false, errs)
	if out.DepositDate != nil && chequeDate != nil && out.DepositDate.Before(*chequeDate) {
		errs.Add("chequeDetails.depositDate", "Deposit date cannot be before cheque date")
	}

	out.ClearanceDate = parseDateField(in.ClearanceDate, "chequeDetails.clearanceDate", "Clearance date", false, errs)
	if out.ClearanceDate != nil && chequeDate != nil && out.ClearanceDate.Before(*chequeDate) {
		errs.Add("chequeDetails.clearanceDate", "Clearance date cannot be before cheque date")
	}

	return out, chequeDate
}

func validateBankProcessing(in BankProcessingInput, status ChequeStatus, chequeDate *time.Time, errs apperrors.FieldErrors) BankProcessing {
	out := BankProcessing{BankCharges: decimal.Zero}

	out.DepositDate = parseDateField(in.DepositDate, "bankProcessing.depositDate", "Bank deposit date", false, errs)
	if out.DepositDate != nil && chequeDate != nil && out.DepositDate.Before(*chequeDate) {
		errs.Add("bankProcessing.depositDate", "Bank deposit date cannot be before cheque date")
	}

	out.ClearanceDate = parseDateField(in.ClearanceDate, "bankProcessing.clearanceDate", "Clearance date", false, errs)
	if out.ClearanceDate != nil && out.DepositDate != nil && out.ClearanceDate.Before(*out.DepositDate) {
		errs.Add("bankProcessing.clearanceDate", "Clearance date cannot be before deposit date")
	}

	out.BounceDate = parseDateField(in.BounceDate, "bankProcessing.bounceDate", "Bounce date", false, errs)
	if out.BounceDate != nil && out.DepositDate != nil && out.BounceDate.Before(*out.DepositDate) {
		errs.Add("bankProcessing.bounceDate", "Bounce date cannot be before deposit date")
	}

	bounceReason := strings.TrimSpace(in.BounceReason)
	if status == StatusBounced {
		if bounceReason == "" {
			errs.Add("bankProcessing.bounceReason", "Bounce reason is required when status is bounced")
		} else if len(bounceReason) > 200 {
			errs.Add("bankProcessing.bounceReason", "Bounce reason cannot exceed 200 characters")
		}
	}
	out.BounceReason = bounceReason

	chargesStr := strings.TrimSpace(in.BankCharges)
	if chargesStr != "" {
		if charges, err := decimal.NewFromString(chargesStr); err != nil {
			errs.Add("bankProcessing.bankCharges", "Bank charges must be a valid number")
		} else if charges.IsNegative() {
			errs.Add("bankProcessing.bankCharges", "Bank charges cannot be negative")
		} else {
			out.BankCharges = charges
		}
	}

	return out
}

// parseDateField parses a yyyy-mm-dd value (an RFC3339 timestamp is truncated
// to its date part first, matching what date inputs submit). A value that
// cannot be parsed is a field error, never a zero time flowing downstream.
func parseDateField(value, field, label string, required bool, errs apperrors.FieldErrors) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			errs.Add(field, label+" is required")
		}
		return nil
	}
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		value = value[:idx]
	}
	parsed, err := time.Parse(chequeDateLayout, value)
	if err != nil {
		errs.Add(field, label+" must be a valid date (yyyy-mm-dd)")
		return nil
	}
	return &parsed
}

func requiredName(value, field, label string, maxLen int, errs apperrors.FieldErrors) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.Add(field, label+" is required")
		return ""
	}
	if len(trimmed) > maxLen {
		errs.Add(field, label+" cannot exceed "+strconv.Itoa(maxLen)+" characters")
	}
	return trimmed
}
