package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cashflowhq/cashflow_backend/internal/apperrors"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to the response envelope. Validation
// errors carry the full field map; everything else gets a status code and a
// message safe to surface.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	var fieldErrs apperrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, dto.ValidationFailed("Validation failed", fieldErrs))
		return
	}

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error(fallbackMsg+": not found"))
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.Error("Refresh token expired"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Error("Forbidden"))
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, dto.Error(appErr.Message))
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error(fallbackMsg))
	}
}

// bindingError converts a gin binding failure into the error envelope.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Error("Invalid request format: "+err.Error()))
}

// normalizePage clamps paging parameters to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// requireUserID pulls the authenticated user ID from the context, responding
// 401 when the auth middleware did not set one.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
	}
	return userID, ok
}
