package models

import "github.com/shopspring/decimal"

// Customer is the row shape of the customers table; personal info and credit
// profile are flattened into columns.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	CustomerCode string `db:"customer_code"`

	Name                 string `db:"name"`
	Phone                string `db:"phone"`
	Email                string `db:"email"`
	Address              string `db:"address"`
	IdentificationNumber string `db:"identification_number"`

	CreditRating decimal.Decimal `db:"credit_rating"`
	CreditLimit  decimal.Decimal `db:"credit_limit"`
	PaymentTerms int             `db:"payment_terms"`
	RiskCategory string          `db:"risk_category"`

	Status string `db:"status"`
	AuditFields
}
