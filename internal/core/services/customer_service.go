package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// customerServiceImpl implements the CustomerSvcFacade interface
type customerServiceImpl struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerServiceImpl{customerRepo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerServiceImpl)(nil)

var (
	minCreditRating = decimal.NewFromInt(1)
	maxCreditRating = decimal.NewFromInt(10)
)

// validateCreditProfile enforces the numeric ranges binding tags cannot
// express on decimal fields.
func validateCreditProfile(profile dto.CreditProfileRequest) apperrors.FieldErrors {
	errs := apperrors.FieldErrors{}
	if !profile.Rating.IsZero() && (profile.Rating.LessThan(minCreditRating) || profile.Rating.GreaterThan(maxCreditRating)) {
		errs.Add("creditProfile.rating", "Credit rating must be between 1 and 10")
	}
	if profile.CreditLimit.IsNegative() {
		errs.Add("creditProfile.creditLimit", "Credit limit cannot be negative")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	if fieldErrs := validateCreditProfile(req.CreditProfile); fieldErrs != nil {
		return nil, fieldErrs
	}

	existing, err := s.customerRepo.FindCustomerByCode(ctx, req.CustomerCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewAppError(409, "Customer code already exists", apperrors.ErrDuplicate)
	}

	status := domain.CustomerStatus(req.Status)
	if status == "" {
		status = domain.CustomerActive
	}
	risk := domain.RiskCategory(req.CreditProfile.RiskCategory)
	if risk == "" {
		risk = domain.RiskMedium
	}
	rating := req.CreditProfile.Rating
	if rating.IsZero() {
		rating = decimal.NewFromInt(5)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		CustomerCode: req.CustomerCode,
		PersonalInfo: domain.PersonalInfo{
			Name:                 req.PersonalInfo.Name,
			Phone:                req.PersonalInfo.Phone,
			Email:                req.PersonalInfo.Email,
			Address:              req.PersonalInfo.Address,
			IdentificationNumber: req.PersonalInfo.IdentificationNumber,
		},
		CreditProfile: domain.CreditProfile{
			Rating:       rating,
			CreditLimit:  req.CreditProfile.CreditLimit,
			PaymentTerms: req.CreditProfile.PaymentTerms,
			RiskCategory: risk,
		},
		Status: status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.String("customer_code", customer.CustomerCode))
	return &customer, nil
}

func (s *customerServiceImpl) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.customerRepo.ListCustomers(ctx, limit, offset)
}

func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.CreditProfile != nil {
		if fieldErrs := validateCreditProfile(*req.CreditProfile); fieldErrs != nil {
			return nil, fieldErrs
		}
	}

	if req.PersonalInfo != nil {
		customer.PersonalInfo = domain.PersonalInfo{
			Name:                 req.PersonalInfo.Name,
			Phone:                req.PersonalInfo.Phone,
			Email:                req.PersonalInfo.Email,
			Address:              req.PersonalInfo.Address,
			IdentificationNumber: req.PersonalInfo.IdentificationNumber,
		}
	}
	if req.CreditProfile != nil {
		customer.CreditProfile = domain.CreditProfile{
			Rating:       req.CreditProfile.Rating,
			CreditLimit:  req.CreditProfile.CreditLimit,
			PaymentTerms: req.CreditProfile.PaymentTerms,
			RiskCategory: domain.RiskCategory(req.CreditProfile.RiskCategory),
		}
	}
	if req.Status != nil {
		customer.Status = domain.CustomerStatus(*req.Status)
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = updaterUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	return customer, nil
}

func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
