package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/google/uuid"
)

// supplierServiceImpl implements the SupplierSvcFacade interface
type supplierServiceImpl struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierServiceImpl{supplierRepo: repo}
}

var _ portssvc.SupplierSvcFacade = (*supplierServiceImpl)(nil)

func (s *supplierServiceImpl) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierServiceImpl) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierServiceImpl) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.supplierRepo.ListSuppliers(ctx, limit, offset)
}

func (s *supplierServiceImpl) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = updaterUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}

	return supplier, nil
}

func (s *supplierServiceImpl) DeactivateSupplier(ctx context.Context, supplierID string, updaterUserID string) error {
	if err := s.supplierRepo.DeactivateSupplier(ctx, supplierID, updaterUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate supplier", slog.String("supplier_id", supplierID))
		return err
	}
	s.LogInfo(ctx, "Supplier deactivated", slog.String("supplier_id", supplierID))
	return nil
}
