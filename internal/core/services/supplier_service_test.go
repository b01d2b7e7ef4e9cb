package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/core/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, int64, error) {
	args := m.Called(ctx, limit, offset)
	var suppliers []domain.Supplier
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]domain.Supplier)
	}
	return suppliers, args.Get(1).(int64), args.Error(2)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeactivateSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	args := m.Called(ctx, supplierID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	req := dto.CreateSupplierRequest{
		Name:  "Lanka Supplies Ltd",
		Email: "orders@lankasupplies.lk",
		Phone: "0112345678",
	}

	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.SupplierID != "" &&
			s.Name == req.Name &&
			s.IsActive &&
			s.CreatedBy == creatorID
	})).Return(nil).Once()

	created, err := suite.service.CreateSupplier(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(created.IsActive)
	suite.NotEmpty(created.SupplierID)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(expectedErr).Once()

	created, err := suite.service.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_PartialUpdate() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Supplier{
		SupplierID: supplierID,
		Name:       "Old Name",
		Phone:      "0112345678",
		IsActive:   true,
	}

	newName := "New Name"

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(existing, nil).Once()
	suite.mockSupplierRepo.On("UpdateSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == newName &&
			s.Phone == "0112345678" &&
			s.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("0112345678", updated.Phone)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SupplierServiceTestSuite) TestDeactivateSupplier_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	updaterID := uuid.NewString()

	suite.mockSupplierRepo.On("DeactivateSupplier", ctx, supplierID, updaterID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.Require().NoError(suite.service.DeactivateSupplier(ctx, supplierID, updaterID))
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_ClampsLimit() {
	ctx := context.Background()

	suite.mockSupplierRepo.On("ListSuppliers", ctx, 20, 0).Return([]domain.Supplier{}, int64(0), nil).Once()

	_, _, err := suite.service.ListSuppliers(ctx, 500, -5)

	suite.Require().NoError(err)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
