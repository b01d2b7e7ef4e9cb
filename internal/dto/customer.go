package dto

import (
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PersonalInfoRequest carries a customer's contact and identification details.
// Phone and identification number use the Sri Lankan formats registered as
// custom binding validators.
type PersonalInfoRequest struct {
	Name                 string `json:"name" binding:"required,max=100"`
	Phone                string `json:"phone" binding:"required,slphone"`
	Email                string `json:"email" binding:"omitempty,email"`
	Address              string `json:"address" binding:"omitempty,max=255"`
	IdentificationNumber string `json:"identificationNumber" binding:"omitempty,slnic"`
}

// CreditProfileRequest carries the credit terms extended to a customer.
type CreditProfileRequest struct {
	Rating       decimal.Decimal `json:"rating"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	PaymentTerms int             `json:"paymentTerms" binding:"omitempty,min=0"`
	RiskCategory string          `json:"riskCategory" binding:"omitempty,oneof=low medium high"`
}

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	CustomerCode  string               `json:"customerCode" binding:"required,max=20"`
	PersonalInfo  PersonalInfoRequest  `json:"personalInfo" binding:"required"`
	CreditProfile CreditProfileRequest `json:"creditProfile"`
	Status        string               `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// The customer code is immutable after creation.
type UpdateCustomerRequest struct {
	PersonalInfo  *PersonalInfoRequest  `json:"personalInfo"`
	CreditProfile *CreditProfileRequest `json:"creditProfile"`
	Status        *string               `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string               `json:"customerID"`
	CustomerCode  string               `json:"customerCode"`
	PersonalInfo  domain.PersonalInfo  `json:"personalInfo"`
	CreditProfile domain.CreditProfile `json:"creditProfile"`
	Status        domain.CustomerStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		CustomerCode:  c.CustomerCode,
		PersonalInfo:  c.PersonalInfo,
		CreditProfile: c.CreditProfile,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
