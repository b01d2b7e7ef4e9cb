package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/core/domain"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/core/services"
	"github.com/cashflowhq/cashflow_backend/internal/platform/config"
	"github.com/cashflowhq/cashflow_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "cashflow-backend",
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	userService := services.NewUserService(suite.mockUserRepo)
	suite.service = services.NewTokenService(suite.cfg, userService)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiry, err := suite.service.GenerateAccessToken(ctx, user)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.WithinDuration(suite.T(), time.Now().Add(suite.cfg.JWTExpiryDuration), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UserID, claims.Subject)
	assert.Equal(suite.T(), suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_ReturnsRawToken() {
	ctx := context.Background()

	token, expiry, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: uuid.NewString()})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.WithinDuration(suite.T(), time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiry, 5*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_Success() {
	ctx := context.Background()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, rawToken)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_Expired() {
	ctx := context.Background()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, rawToken)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenExpired)
	assert.Nil(suite.T(), got)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_HashMismatch() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken("a-different-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, "raw-refresh-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.Nil(suite.T(), got)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_NoStoredToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, "raw-refresh-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.Nil(suite.T(), got)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateAndParseRefreshToken_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "raw-refresh-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.Nil(suite.T(), got)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
