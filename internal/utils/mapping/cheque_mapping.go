package mapping

import (
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/models"
)

// ToModelCheque flattens a domain Cheque into its row shape.
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeID:          d.ChequeID,
		ChequeNumber:      d.ChequeNumber,
		Type:              string(d.Type),
		TransactionID:     d.RelatedTransaction.TransactionID,
		TransactionType:   string(d.RelatedTransaction.TransactionType),
		CustomerID:        d.RelatedTransaction.CustomerID,
		SupplierID:        d.RelatedTransaction.SupplierID,
		Amount:            d.ChequeDetails.Amount,
		ChequeDate:        d.ChequeDetails.ChequeDate,
		BankName:          d.ChequeDetails.BankName,
		AccountNumber:     d.ChequeDetails.AccountNumber,
		DrawerName:        d.ChequeDetails.DrawerName,
		PayeeName:         d.ChequeDetails.PayeeName,
		DepositDate:       d.ChequeDetails.DepositDate,
		ClearanceDate:     d.ChequeDetails.ClearanceDate,
		Status:            string(d.Status),
		BankDepositDate:   d.BankProcessing.DepositDate,
		BankClearanceDate: d.BankProcessing.ClearanceDate,
		BounceDate:        d.BankProcessing.BounceDate,
		BounceReason:      d.BankProcessing.BounceReason,
		BankCharges:       d.BankProcessing.BankCharges,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheque rebuilds the nested domain Cheque from its row shape.
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:     m.ChequeID,
		ChequeNumber: m.ChequeNumber,
		Type:         domain.ChequeType(m.Type),
		RelatedTransaction: domain.RelatedTransaction{
			TransactionID:   m.TransactionID,
			TransactionType: domain.ChequeTransactionType(m.TransactionType),
			CustomerID:      m.CustomerID,
			SupplierID:      m.SupplierID,
		},
		ChequeDetails: domain.ChequeDetails{
			Amount:        m.Amount,
			ChequeDate:    m.ChequeDate,
			BankName:      m.BankName,
			AccountNumber: m.AccountNumber,
			DrawerName:    m.DrawerName,
			PayeeName:     m.PayeeName,
			DepositDate:   m.DepositDate,
			ClearanceDate: m.ClearanceDate,
		},
		Status: domain.ChequeStatus(m.Status),
		BankProcessing: domain.BankProcessing{
			DepositDate:   m.BankDepositDate,
			ClearanceDate: m.BankClearanceDate,
			BounceDate:    m.BounceDate,
			BounceReason:  m.BounceReason,
			BankCharges:   m.BankCharges,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainChequeSlice converts a slice of model Cheques to domain Cheques.
func ToDomainChequeSlice(ms []models.Cheque) []domain.Cheque {
	ds := make([]domain.Cheque, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCheque(m)
	}
	return ds
}

// ToDomainStatusChange converts a status history row to its domain form.
func ToDomainStatusChange(m models.ChequeStatusChange) domain.ChequeStatusChange {
	return domain.ChequeStatusChange{
		ChangeID:   m.ChangeID,
		ChequeID:   m.ChequeID,
		FromStatus: domain.ChequeStatus(m.FromStatus),
		ToStatus:   domain.ChequeStatus(m.ToStatus),
		Notes:      m.Notes,
		ChangedAt:  m.ChangedAt,
		ChangedBy:  m.ChangedBy,
	}
}
