package services_test

import (
	"context"
	"testing"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/core/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChequeRepository ---
type MockChequeRepository struct {
	mock.Mock
}

func (m *MockChequeRepository) FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID)
	var cheque *domain.Cheque
	if args.Get(0) != nil {
		cheque = args.Get(0).(*domain.Cheque)
	}
	return cheque, args.Error(1)
}

func (m *MockChequeRepository) ListCheques(ctx context.Context, filter portsrepo.ChequeListFilter, limit int, offset int) ([]domain.Cheque, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var cheques []domain.Cheque
	if args.Get(0) != nil {
		cheques = args.Get(0).([]domain.Cheque)
	}
	return cheques, args.Get(1).(int64), args.Error(2)
}

func (m *MockChequeRepository) FindAllCheques(ctx context.Context) ([]domain.Cheque, error) {
	args := m.Called(ctx)
	var cheques []domain.Cheque
	if args.Get(0) != nil {
		cheques = args.Get(0).([]domain.Cheque)
	}
	return cheques, args.Error(1)
}

func (m *MockChequeRepository) FindStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error) {
	args := m.Called(ctx, chequeID)
	var history []domain.ChequeStatusChange
	if args.Get(0) != nil {
		history = args.Get(0).([]domain.ChequeStatusChange)
	}
	return history, args.Error(1)
}

func (m *MockChequeRepository) SaveCheque(ctx context.Context, cheque domain.Cheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockChequeRepository) UpdateCheque(ctx context.Context, cheque domain.Cheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockChequeRepository) DeleteCheque(ctx context.Context, chequeID string) error {
	args := m.Called(ctx, chequeID)
	return args.Error(0)
}

func (m *MockChequeRepository) SaveStatusChange(ctx context.Context, change domain.ChequeStatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// --- Test Suite ---
type ChequeServiceTestSuite struct {
	suite.Suite
	mockChequeRepo *MockChequeRepository
	service        portssvc.ChequeSvcFacade
}

func (suite *ChequeServiceTestSuite) SetupTest() {
	suite.mockChequeRepo = new(MockChequeRepository)
	suite.service = services.NewChequeService(suite.mockChequeRepo)
}

func validSaveChequeRequest() dto.SaveChequeRequest {
	return dto.SaveChequeRequest{
		ChequeNumber: "CHQ-1001",
		Type:         "issued",
		RelatedTransaction: dto.RelatedTransactionRequest{
			TransactionID:   "507f1f77bcf86cd799439011",
			TransactionType: "purchase",
			SupplierID:      "6f1c7d2e-4b3a-4c8d-9e0f-1a2b3c4d5e6f",
		},
		ChequeDetails: dto.ChequeDetailsRequest{
			Amount:        "1500.50",
			ChequeDate:    "2025-03-10",
			BankName:      "Commercial Bank",
			AccountNumber: "001-2345678",
			DrawerName:    "Acme Traders",
			PayeeName:     "Lanka Supplies Ltd",
		},
	}
}

func storedCheque(status domain.ChequeStatus) *domain.Cheque {
	cheque, fieldErrs := domain.ValidateChequeInput(validSaveChequeRequest().ToChequeInput())
	if fieldErrs != nil {
		panic(fieldErrs)
	}
	cheque.ChequeID = uuid.NewString()
	cheque.Status = status
	return cheque
}

// --- CreateCheque Tests ---

func (suite *ChequeServiceTestSuite) TestCreateCheque_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockChequeRepo.On("SaveCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.ChequeID != "" &&
			c.Status == domain.StatusPending &&
			c.Type == domain.ChequeIssued &&
			c.ChequeDetails.Amount.Equal(decimal.RequireFromString("1500.50")) &&
			c.CreatedBy == creatorID
	})).Return(nil).Once()

	created, err := suite.service.CreateCheque(ctx, validSaveChequeRequest(), creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.StatusPending, created.Status)
	suite.Equal("6f1c7d2e-4b3a-4c8d-9e0f-1a2b3c4d5e6f", created.RelatedTransaction.SupplierID)
	suite.Empty(created.RelatedTransaction.CustomerID)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_CollectsAllViolations() {
	ctx := context.Background()

	req := validSaveChequeRequest()
	req.Type = ""
	req.ChequeDetails.Amount = "0"
	req.ChequeDetails.BankName = ""

	created, err := suite.service.CreateCheque(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "type")
	suite.Contains(fieldErrs, "chequeDetails.amount")
	suite.Contains(fieldErrs, "chequeDetails.bankName")
	suite.mockChequeRepo.AssertNotCalled(suite.T(), "SaveCheque", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_SaleRequiresCustomer() {
	ctx := context.Background()

	req := validSaveChequeRequest()
	req.Type = "received"
	req.RelatedTransaction.TransactionType = "sale"
	req.RelatedTransaction.SupplierID = ""

	created, err := suite.service.CreateCheque(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "relatedTransaction.customerId")
}

func (suite *ChequeServiceTestSuite) TestCreateCheque_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockChequeRepo.On("SaveCheque", ctx, mock.AnythingOfType("domain.Cheque")).Return(expectedErr).Once()

	created, err := suite.service.CreateCheque(ctx, validSaveChequeRequest(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

// --- UpdateCheque Tests ---

func (suite *ChequeServiceTestSuite) TestUpdateCheque_Success() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusPending)
	updaterID := uuid.NewString()

	req := validSaveChequeRequest()
	req.ChequeDetails.Amount = "2000"

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()
	suite.mockChequeRepo.On("UpdateCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.ChequeID == existing.ChequeID &&
			c.ChequeDetails.Amount.Equal(decimal.NewFromInt(2000)) &&
			c.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCheque(ctx, existing.ChequeID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(existing.ChequeID, updated.ChequeID)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpdateCheque_NotFound() {
	ctx := context.Background()
	chequeID := uuid.NewString()

	suite.mockChequeRepo.On("FindChequeByID", ctx, chequeID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCheque(ctx, chequeID, validSaveChequeRequest(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpdateCheque_StatusChangeRecordsHistory() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusPending)
	updaterID := uuid.NewString()

	req := validSaveChequeRequest()
	req.Status = "deposited"

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()
	suite.mockChequeRepo.On("UpdateCheque", ctx, mock.AnythingOfType("domain.Cheque")).Return(nil).Once()
	suite.mockChequeRepo.On("SaveStatusChange", ctx, mock.MatchedBy(func(ch domain.ChequeStatusChange) bool {
		return ch.ChequeID == existing.ChequeID &&
			ch.FromStatus == domain.StatusPending &&
			ch.ToStatus == domain.StatusDeposited &&
			ch.ChangedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCheque(ctx, existing.ChequeID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeposited, updated.Status)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

// --- UpdateChequeStatus Tests ---

func (suite *ChequeServiceTestSuite) TestUpdateChequeStatus_Success() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusPending)
	updaterID := uuid.NewString()

	req := dto.UpdateChequeStatusRequest{
		Status:      "deposited",
		Notes:       "Deposited at branch",
		DepositDate: "2025-03-12",
	}

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()
	suite.mockChequeRepo.On("UpdateCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.Status == domain.StatusDeposited && c.BankProcessing.DepositDate != nil
	})).Return(nil).Once()
	suite.mockChequeRepo.On("SaveStatusChange", ctx, mock.MatchedBy(func(ch domain.ChequeStatusChange) bool {
		return ch.FromStatus == domain.StatusPending &&
			ch.ToStatus == domain.StatusDeposited &&
			ch.Notes == "Deposited at branch"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateChequeStatus(ctx, existing.ChequeID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDeposited, updated.Status)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestUpdateChequeStatus_UnknownStatus() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusPending)

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateChequeStatus(ctx, existing.ChequeID, dto.UpdateChequeStatusRequest{Status: "torn"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "status")
	suite.mockChequeRepo.AssertNotCalled(suite.T(), "UpdateCheque", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestUpdateChequeStatus_BounceRequiresReason() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusDeposited)

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateChequeStatus(ctx, existing.ChequeID, dto.UpdateChequeStatusRequest{Status: "bounced"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "bankProcessing.bounceReason")
	suite.mockChequeRepo.AssertNotCalled(suite.T(), "SaveStatusChange", mock.Anything, mock.Anything)
}

func (suite *ChequeServiceTestSuite) TestUpdateChequeStatus_BounceWithReason() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusDeposited)

	req := dto.UpdateChequeStatusRequest{
		Status:       "bounced",
		BounceDate:   "2025-03-15",
		BounceReason: "Insufficient funds",
		BankCharges:  "250",
	}

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()
	suite.mockChequeRepo.On("UpdateCheque", ctx, mock.MatchedBy(func(c domain.Cheque) bool {
		return c.Status == domain.StatusBounced &&
			c.BankProcessing.BounceReason == "Insufficient funds" &&
			c.BankProcessing.BankCharges.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()
	suite.mockChequeRepo.On("SaveStatusChange", ctx, mock.AnythingOfType("domain.ChequeStatusChange")).Return(nil).Once()

	updated, err := suite.service.UpdateChequeStatus(ctx, existing.ChequeID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBounced, updated.Status)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

// --- ListCheques Tests ---

func (suite *ChequeServiceTestSuite) TestListCheques_DefaultsPaging() {
	ctx := context.Background()

	suite.mockChequeRepo.On("ListCheques", ctx, portsrepo.ChequeListFilter{}, 20, 0).
		Return([]domain.Cheque{*storedCheque(domain.StatusPending)}, int64(1), nil).Once()

	cheques, total, err := suite.service.ListCheques(ctx, dto.ListChequesRequest{})

	suite.Require().NoError(err)
	suite.Len(cheques, 1)
	suite.Equal(int64(1), total)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestListCheques_AppliesFilterAndOffset() {
	ctx := context.Background()

	suite.mockChequeRepo.On("ListCheques", ctx, mock.MatchedBy(func(f portsrepo.ChequeListFilter) bool {
		return f.Status == domain.StatusPending &&
			f.Type == domain.ChequeIssued &&
			f.DueDateFrom != nil && f.DueDateTo != nil
	}), 10, 20).Return([]domain.Cheque{}, int64(0), nil).Once()

	_, _, err := suite.service.ListCheques(ctx, dto.ListChequesRequest{
		Page:        3,
		Limit:       10,
		Status:      "pending",
		Type:        "issued",
		DueDateFrom: "2025-03-01",
		DueDateTo:   "2025-03-31",
	})

	suite.Require().NoError(err)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestListCheques_RejectsBadFilter() {
	ctx := context.Background()

	_, _, err := suite.service.ListCheques(ctx, dto.ListChequesRequest{
		Status:      "torn",
		DueDateFrom: "31-03-2025",
	})

	suite.Require().Error(err)

	var fieldErrs apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fieldErrs)
	suite.Contains(fieldErrs, "status")
	suite.Contains(fieldErrs, "dueDateFrom")
	suite.mockChequeRepo.AssertNotCalled(suite.T(), "ListCheques", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetStatusHistory Tests ---

func (suite *ChequeServiceTestSuite) TestGetStatusHistory_Success() {
	ctx := context.Background()
	existing := storedCheque(domain.StatusDeposited)
	history := []domain.ChequeStatusChange{
		{ChangeID: uuid.NewString(), ChequeID: existing.ChequeID, FromStatus: domain.StatusPending, ToStatus: domain.StatusDeposited},
	}

	suite.mockChequeRepo.On("FindChequeByID", ctx, existing.ChequeID).Return(existing, nil).Once()
	suite.mockChequeRepo.On("FindStatusHistory", ctx, existing.ChequeID).Return(history, nil).Once()

	got, err := suite.service.GetStatusHistory(ctx, existing.ChequeID)

	suite.Require().NoError(err)
	suite.Equal(history, got)
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func (suite *ChequeServiceTestSuite) TestGetStatusHistory_ChequeNotFound() {
	ctx := context.Background()
	chequeID := uuid.NewString()

	suite.mockChequeRepo.On("FindChequeByID", ctx, chequeID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetStatusHistory(ctx, chequeID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockChequeRepo.AssertNotCalled(suite.T(), "FindStatusHistory", mock.Anything, mock.Anything)
}

// --- DeleteCheque Tests ---

func (suite *ChequeServiceTestSuite) TestDeleteCheque_Success() {
	ctx := context.Background()
	chequeID := uuid.NewString()

	suite.mockChequeRepo.On("DeleteCheque", ctx, chequeID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteCheque(ctx, chequeID))
	suite.mockChequeRepo.AssertExpectations(suite.T())
}

func TestChequeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChequeServiceTestSuite))
}
