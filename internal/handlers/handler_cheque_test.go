package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/handlers"
	"github.com/cashflowhq/cashflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) CreateCheque(ctx context.Context, req dto.SaveChequeRequest, creatorUserID string) (*domain.Cheque, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) ListCheques(ctx context.Context, req dto.ListChequesRequest) ([]domain.Cheque, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Cheque), args.Get(1).(int64), args.Error(2)
}

func (m *MockChequeService) GetStatusHistory(ctx context.Context, chequeID string) ([]domain.ChequeStatusChange, error) {
	args := m.Called(ctx, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChequeStatusChange), args.Error(1)
}

func (m *MockChequeService) UpdateCheque(ctx context.Context, chequeID string, req dto.SaveChequeRequest, updaterUserID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) UpdateChequeStatus(ctx context.Context, chequeID string, req dto.UpdateChequeStatusRequest, updaterUserID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) DeleteCheque(ctx context.Context, chequeID string) error {
	args := m.Called(ctx, chequeID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ChequeSvcFacade = (*MockChequeService)(nil)

// --- Test Suite ---
type ChequeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockChequeService *MockChequeService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ChequeHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cashflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ChequeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockChequeService = new(MockChequeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterChequeRoutes(v1, suite.mockChequeService)
}

func (suite *ChequeHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *http.Request {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func testCheque(status domain.ChequeStatus) *domain.Cheque {
	return &domain.Cheque{
		ChequeID:     uuid.NewString(),
		ChequeNumber: "123456",
		Type:         domain.ChequeIssued,
		RelatedTransaction: domain.RelatedTransaction{
			TransactionID:   "507f1f77bcf86cd799439011",
			TransactionType: domain.TransactionPurchase,
			SupplierID:      "6f1c7d2e-4b3a-4c8d-9e0f-1a2b3c4d5e6f",
		},
		ChequeDetails: domain.ChequeDetails{
			Amount:     decimal.NewFromFloat(1500.50),
			ChequeDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			BankName:   "Commercial Bank",
		},
		Status: status,
	}
}

// --- Test Cases ---

func (suite *ChequeHandlerTestSuite) TestListCheques_Success() {
	requestingUserID := uuid.NewString()
	expected := []domain.Cheque{*testCheque(domain.StatusPending), *testCheque(domain.StatusCleared)}

	suite.mockChequeService.On("ListCheques",
		mock.Anything,
		mock.MatchedBy(func(req dto.ListChequesRequest) bool {
			return req.Page == 2 && req.Limit == 10 && req.Status == "pending"
		}),
	).Return(expected, int64(12), nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/cheques?page=2&limit=10&status=pending", nil, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Status     string               `json:"status"`
		Data       []dto.ChequeResponse `json:"data"`
		Pagination *dto.Pagination      `json:"pagination"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("success", body.Status)
	suite.Len(body.Data, 2)
	suite.Equal(expected[0].ChequeID, body.Data[0].ChequeID)
	suite.Require().NotNil(body.Pagination)
	suite.Equal(2, body.Pagination.Page)
	suite.Equal(int64(12), body.Pagination.Total)
	suite.Equal(2, body.Pagination.Pages)

	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestListCheques_ClampsPagingBeforeService() {
	requestingUserID := uuid.NewString()
	expected := []domain.Cheque{*testCheque(domain.StatusPending)}

	suite.mockChequeService.On("ListCheques",
		mock.Anything,
		mock.MatchedBy(func(req dto.ListChequesRequest) bool {
			return req.Page == 1 && req.Limit == 100
		}),
	).Return(expected, int64(1), nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/cheques?page=0&limit=500", nil, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Pagination *dto.Pagination `json:"pagination"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NotNil(body.Pagination)
	suite.Equal(1, body.Pagination.Page)
	suite.Equal(100, body.Pagination.Limit)
	suite.Equal(1, body.Pagination.Pages)

	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestCreateCheque_Success() {
	requestingUserID := uuid.NewString()
	created := testCheque(domain.StatusPending)

	suite.mockChequeService.On("CreateCheque",
		mock.Anything,
		mock.MatchedBy(func(req dto.SaveChequeRequest) bool {
			return req.Type == "issued" && req.ChequeDetails.Amount.String() == "1500.50"
		}),
		requestingUserID,
	).Return(created, nil).Once()

	body := []byte(`{
		"chequeNumber": "123456",
		"type": "issued",
		"relatedTransaction": {
			"transactionId": "507f1f77bcf86cd799439011",
			"transactionType": "purchase",
			"supplierId": "6f1c7d2e-4b3a-4c8d-9e0f-1a2b3c4d5e6f"
		},
		"chequeDetails": {
			"amount": 1500.50,
			"chequeDate": "2025-03-10",
			"bankName": "Commercial Bank"
		}
	}`)

	req := suite.authedRequest(http.MethodPost, "/api/v1/cheques", body, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp struct {
		Status string             `json:"status"`
		Data   dto.ChequeResponse `json:"data"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("success", resp.Status)
	suite.Equal(created.ChequeID, resp.Data.ChequeID)
	suite.Equal("Pending", resp.Data.StatusLabel)

	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestCreateCheque_ValidationErrorsReturned() {
	requestingUserID := uuid.NewString()
	fieldErrs := apperrors.FieldErrors{
		"chequeDetails.amount":          "Valid amount is required",
		"relatedTransaction.supplierId": "Supplier is required for purchase transactions",
	}

	suite.mockChequeService.On("CreateCheque", mock.Anything, mock.Anything, requestingUserID).
		Return(nil, fieldErrs).Once()

	body := []byte(`{"type": "issued"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/cheques", body, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Status  string            `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("error", resp.Status)
	suite.Equal("Validation failed", resp.Message)
	suite.Len(resp.Errors, 2)
	suite.Contains(resp.Errors, "chequeDetails.amount")

	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestGetCheque_NotFound() {
	requestingUserID := uuid.NewString()
	chequeID := uuid.NewString()

	suite.mockChequeService.On("GetChequeByID", mock.Anything, chequeID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/cheques/"+chequeID, nil, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestUpdateChequeStatus_Success() {
	requestingUserID := uuid.NewString()
	updated := testCheque(domain.StatusBounced)
	updated.BankProcessing.BounceReason = "Insufficient funds"

	suite.mockChequeService.On("UpdateChequeStatus",
		mock.Anything,
		updated.ChequeID,
		mock.MatchedBy(func(req dto.UpdateChequeStatusRequest) bool {
			return req.Status == "bounced" && req.BounceReason == "Insufficient funds"
		}),
		requestingUserID,
	).Return(updated, nil).Once()

	body := []byte(`{"status": "bounced", "bounceReason": "Insufficient funds"}`)
	req := suite.authedRequest(http.MethodPatch, "/api/v1/cheques/"+updated.ChequeID+"/status", body, requestingUserID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Data dto.ChequeResponse `json:"data"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StatusBounced, resp.Data.Status)

	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestListCheques_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cheques", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockChequeService.AssertNotCalled(suite.T(), "ListCheques", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestChequeHandler(t *testing.T) {
	suite.Run(t, new(ChequeHandlerTestSuite))
}
