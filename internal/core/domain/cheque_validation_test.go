package domain_test

import (
	"strings"
	"testing"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTxnID      = "507f1f77bcf86cd799439011"
	testSupplierID = "6f1c7d2e-4b3a-4c8d-9e0f-1a2b3c4d5e6f"
	testCustomerID = "9d8c7b6a-5e4f-4d3c-8b2a-1f0e9d8c7b6a"
)

// validInput returns a cheque input that passes validation as-is
// (chequeDate 2025-05-01, status pending, no processing dates).
func validInput() domain.ChequeInput {
	return domain.ChequeInput{
		ChequeNumber: "CHQ-1001",
		Type:         "issued",
		RelatedTransaction: domain.RelatedTransactionInput{
			TransactionID:   testTxnID,
			TransactionType: "purchase",
			SupplierID:      testSupplierID,
		},
		ChequeDetails: domain.ChequeDetailsInput{
			Amount:        "1500.50",
			ChequeDate:    "2025-05-01",
			BankName:      "Commercial Bank",
			AccountNumber: "100200300",
			DrawerName:    "Acme Traders",
			PayeeName:     "Lanka Supplies",
		},
		Status: "pending",
	}
}

func TestValidateChequeInput_Valid(t *testing.T) {
	cheque, errs := domain.ValidateChequeInput(validInput())

	require.Nil(t, errs)
	require.NotNil(t, cheque)
	assert.Equal(t, "CHQ-1001", cheque.ChequeNumber)
	assert.Equal(t, domain.ChequeIssued, cheque.Type)
	assert.Equal(t, domain.StatusPending, cheque.Status)
	assert.Equal(t, testSupplierID, cheque.RelatedTransaction.SupplierID)
	assert.Empty(t, cheque.RelatedTransaction.CustomerID)
	assert.True(t, cheque.ChequeDetails.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "2025-05-01", cheque.ChequeDetails.ChequeDate.Format("2006-01-02"))
	assert.Nil(t, cheque.ChequeDetails.DepositDate)
	assert.True(t, cheque.BankProcessing.BankCharges.IsZero())
}

func TestValidateChequeInput_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.ChequeInput)
		wantField string
	}{
		{"missing type", func(in *domain.ChequeInput) { in.Type = "" }, "type"},
		{"missing transaction id", func(in *domain.ChequeInput) { in.RelatedTransaction.TransactionID = "" }, "relatedTransaction.transactionId"},
		{"missing transaction type", func(in *domain.ChequeInput) { in.RelatedTransaction.TransactionType = "" }, "relatedTransaction.transactionType"},
		{"missing amount", func(in *domain.ChequeInput) { in.ChequeDetails.Amount = "" }, "chequeDetails.amount"},
		{"missing cheque date", func(in *domain.ChequeInput) { in.ChequeDetails.ChequeDate = "" }, "chequeDetails.chequeDate"},
		{"blank bank name", func(in *domain.ChequeInput) { in.ChequeDetails.BankName = "   " }, "chequeDetails.bankName"},
		{"blank account number", func(in *domain.ChequeInput) { in.ChequeDetails.AccountNumber = "" }, "chequeDetails.accountNumber"},
		{"blank drawer name", func(in *domain.ChequeInput) { in.ChequeDetails.DrawerName = "  " }, "chequeDetails.drawerName"},
		{"blank payee name", func(in *domain.ChequeInput) { in.ChequeDetails.PayeeName = "" }, "chequeDetails.payeeName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			cheque, errs := domain.ValidateChequeInput(in)

			assert.Nil(t, cheque)
			require.True(t, errs.HasErrors())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateChequeInput_CounterpartyByTransactionType(t *testing.T) {
	// sale requires a customer, purchase a supplier; never both.
	in := validInput()
	in.RelatedTransaction.TransactionType = "sale"
	in.RelatedTransaction.SupplierID = ""

	cheque, errs := domain.ValidateChequeInput(in)
	assert.Nil(t, cheque)
	assert.Contains(t, errs, "relatedTransaction.customerId")

	in.RelatedTransaction.CustomerID = testCustomerID
	cheque, errs = domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	assert.Equal(t, testCustomerID, cheque.RelatedTransaction.CustomerID)
	assert.Empty(t, cheque.RelatedTransaction.SupplierID)
}

func TestValidateChequeInput_ObjectIDFormat(t *testing.T) {
	in := validInput()
	in.RelatedTransaction.TransactionID = "not-a-hex-id"

	_, errs := domain.ValidateChequeInput(in)
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs["relatedTransaction.transactionId"], "ObjectId")
}

func TestValidateChequeInput_CounterpartyIDFormat(t *testing.T) {
	// Counterparty references point at supplier/customer rows keyed by the
	// UUIDs this system issues, so a freshly created supplier's ID must pass.
	in := validInput()
	in.RelatedTransaction.SupplierID = uuid.NewString()

	cheque, errs := domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	assert.Equal(t, in.RelatedTransaction.SupplierID, cheque.RelatedTransaction.SupplierID)

	// A 24-hex transaction-style identifier is not one of our supplier IDs.
	in.RelatedTransaction.SupplierID = "507f1f77bcf86cd799439012"
	cheque, errs = domain.ValidateChequeInput(in)
	assert.Nil(t, cheque)
	assert.Contains(t, errs["relatedTransaction.supplierId"], "UUID")

	sale := validInput()
	sale.RelatedTransaction.TransactionType = "sale"
	sale.RelatedTransaction.SupplierID = ""
	sale.RelatedTransaction.CustomerID = "507f1f77bcf86cd799439013"
	cheque, errs = domain.ValidateChequeInput(sale)
	assert.Nil(t, cheque)
	assert.Contains(t, errs["relatedTransaction.customerId"], "UUID")
}

func TestValidateChequeInput_AmountBounds(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"zero fails", "0.00", true},
		{"below minimum fails", "0.001", true},
		{"minimum passes", "0.01", false},
		{"non-numeric fails", "abc", true},
		{"negative fails", "-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.ChequeDetails.Amount = tt.amount

			cheque, errs := domain.ValidateChequeInput(in)
			if tt.wantErr {
				assert.Nil(t, cheque)
				assert.Contains(t, errs, "chequeDetails.amount")
			} else {
				require.Nil(t, errs)
				require.NotNil(t, cheque)
			}
		})
	}
}

func TestValidateChequeInput_DateOrdering(t *testing.T) {
	// chequeDate is 2025-05-01; day before fails, same day and day after pass.
	tests := []struct {
		name    string
		deposit string
		wantErr bool
	}{
		{"day before cheque date fails", "2025-04-30", true},
		{"same day passes", "2025-05-01", false},
		{"day after passes", "2025-05-02", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.ChequeDetails.DepositDate = tt.deposit

			cheque, errs := domain.ValidateChequeInput(in)
			if tt.wantErr {
				assert.Nil(t, cheque)
				assert.Contains(t, errs["chequeDetails.depositDate"], "cannot be before cheque date")
			} else {
				require.Nil(t, errs)
				require.NotNil(t, cheque.ChequeDetails.DepositDate)
			}
		})
	}
}

func TestValidateChequeInput_BankProcessingOrdering(t *testing.T) {
	in := validInput()
	in.BankProcessing.DepositDate = "2025-05-03"
	in.BankProcessing.ClearanceDate = "2025-05-02"
	in.BankProcessing.BounceDate = "2025-05-01"

	_, errs := domain.ValidateChequeInput(in)
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs, "bankProcessing.clearanceDate")
	assert.Contains(t, errs, "bankProcessing.bounceDate")

	// Without a bank deposit date there is nothing to order against.
	in.BankProcessing.DepositDate = ""
	cheque, errs := domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	require.NotNil(t, cheque)
}

func TestValidateChequeInput_BounceReason(t *testing.T) {
	// Scenario: pending cheque validates clean, flipping to bounced without a
	// reason yields exactly one error at bankProcessing.bounceReason.
	in := validInput()
	cheque, errs := domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	require.NotNil(t, cheque)

	in.Status = "bounced"
	cheque, errs = domain.ValidateChequeInput(in)
	assert.Nil(t, cheque)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "bankProcessing.bounceReason")

	in.BankProcessing.BounceReason = "Insufficient funds"
	cheque, errs = domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	assert.Equal(t, "Insufficient funds", cheque.BankProcessing.BounceReason)

	in.BankProcessing.BounceReason = strings.Repeat("x", 201)
	_, errs = domain.ValidateChequeInput(in)
	assert.Contains(t, errs, "bankProcessing.bounceReason")

	// A non-bounced status never requires the reason, whatever its value.
	in.Status = "cleared"
	in.BankProcessing.BounceReason = ""
	_, errs = domain.ValidateChequeInput(in)
	assert.Nil(t, errs)
}

func TestValidateChequeInput_BankCharges(t *testing.T) {
	in := validInput()
	in.BankProcessing.BankCharges = "-5"
	_, errs := domain.ValidateChequeInput(in)
	assert.Contains(t, errs, "bankProcessing.bankCharges")

	in.BankProcessing.BankCharges = "12.50"
	cheque, errs := domain.ValidateChequeInput(in)
	require.Nil(t, errs)
	assert.True(t, cheque.BankProcessing.BankCharges.Equal(decimal.RequireFromString("12.50")))
}

func TestValidateChequeInput_UnparseableDate(t *testing.T) {
	in := validInput()
	in.ChequeDetails.ChequeDate = "01/05/2025"

	cheque, errs := domain.ValidateChequeInput(in)
	assert.Nil(t, cheque)
	assert.Contains(t, errs["chequeDetails.chequeDate"], "valid date")
}

func TestValidateChequeInput_CollectsAllErrors(t *testing.T) {
	cheque, errs := domain.ValidateChequeInput(domain.ChequeInput{})

	assert.Nil(t, cheque)
	// Every independently-evaluated rule should have fired, not just the first.
	for _, field := range []string{
		"type",
		"relatedTransaction.transactionId",
		"relatedTransaction.transactionType",
		"chequeDetails.amount",
		"chequeDetails.chequeDate",
		"chequeDetails.bankName",
		"chequeDetails.accountNumber",
		"chequeDetails.drawerName",
		"chequeDetails.payeeName",
	} {
		assert.Contains(t, errs, field)
	}
	assert.ErrorIs(t, errs, apperrors.ErrValidation)
}
