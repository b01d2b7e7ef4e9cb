package mapping

import (
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/cashflowhq/cashflow_backend/internal/models"
)

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:           d.CustomerID,
		CustomerCode:         d.CustomerCode,
		Name:                 d.PersonalInfo.Name,
		Phone:                d.PersonalInfo.Phone,
		Email:                d.PersonalInfo.Email,
		Address:              d.PersonalInfo.Address,
		IdentificationNumber: d.PersonalInfo.IdentificationNumber,
		CreditRating:         d.CreditProfile.Rating,
		CreditLimit:          d.CreditProfile.CreditLimit,
		PaymentTerms:         d.CreditProfile.PaymentTerms,
		RiskCategory:         string(d.CreditProfile.RiskCategory),
		Status:               string(d.Status),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		CustomerCode: m.CustomerCode,
		PersonalInfo: domain.PersonalInfo{
			Name:                 m.Name,
			Phone:                m.Phone,
			Email:                m.Email,
			Address:              m.Address,
			IdentificationNumber: m.IdentificationNumber,
		},
		CreditProfile: domain.CreditProfile{
			Rating:       m.CreditRating,
			CreditLimit:  m.CreditLimit,
			PaymentTerms: m.PaymentTerms,
			RiskCategory: domain.RiskCategory(m.RiskCategory),
		},
		Status:      domain.CustomerStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
