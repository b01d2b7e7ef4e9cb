package domain

import "github.com/shopspring/decimal"

// RiskCategory classifies a customer's credit risk.
type RiskCategory string

const (
	RiskLow    RiskCategory = "low"
	RiskMedium RiskCategory = "medium"
	RiskHigh   RiskCategory = "high"
)

// CustomerStatus is the account standing of a customer.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerSuspended CustomerStatus = "suspended"
)

// PersonalInfo holds a customer's contact and identification details.
type PersonalInfo struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Email                string `json:"email,omitempty"`
	Address              string `json:"address,omitempty"`
	IdentificationNumber string `json:"identificationNumber,omitempty"`
}

// CreditProfile holds the credit terms extended to a customer.
type CreditProfile struct {
	Rating       decimal.Decimal `json:"rating"`      // 1-10
	CreditLimit  decimal.Decimal `json:"creditLimit"` // >= 0
	PaymentTerms int             `json:"paymentTerms"` // days, >= 0
	RiskCategory RiskCategory    `json:"riskCategory"`
}

// Customer represents a counterparty we sell to and receive cheques from.
type Customer struct {
	CustomerID    string         `json:"customerID"`   // Primary Key (UUID)
	CustomerCode  string         `json:"customerCode"` // Unique business key, <= 20 chars
	PersonalInfo  PersonalInfo   `json:"personalInfo"`
	CreditProfile CreditProfile  `json:"creditProfile"`
	Status        CustomerStatus `json:"status"`
	AuditFields
}
