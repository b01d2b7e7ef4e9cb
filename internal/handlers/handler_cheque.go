package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// chequeHandler handles HTTP requests related to cheques.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

// newChequeHandler creates a new chequeHandler.
func newChequeHandler(cs portssvc.ChequeSvcFacade) *chequeHandler {
	return &chequeHandler{
		chequeService: cs,
	}
}

// RegisterChequeRoutes registers all cheque-related routes.
func RegisterChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := newChequeHandler(chequeService)

	cheques := rg.Group("/cheques")
	{
		cheques.GET("", h.listCheques)
		cheques.POST("", h.createCheque)
		cheques.GET("/:id", h.getCheque)
		cheques.PUT("/:id", h.updateCheque)
		cheques.DELETE("/:id", h.deleteCheque)
		cheques.PATCH("/:id/status", h.updateChequeStatus)
		cheques.GET("/:id/history", h.getStatusHistory)
	}
}

// createCheque godoc
// @Summary Create a new cheque
// @Description Validates and persists a new cheque record. All validation violations are returned at once in the errors map.
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   cheque body dto.SaveChequeRequest true "Cheque details"
// @Success 201 {object} dto.Envelope{data=dto.ChequeResponse}
// @Failure 400 {object} dto.Envelope "Validation failed"
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques [post]
func (h *chequeHandler) createCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.SaveChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	created, err := h.chequeService.CreateCheque(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create cheque")
		return
	}

	logger.Info("Cheque created", slog.String("cheque_id", created.ChequeID))
	c.JSON(http.StatusCreated, dto.SuccessWithMessage(dto.ToChequeResponse(created), "Cheque created successfully"))
}

// listCheques godoc
// @Summary List cheques
// @Description Retrieves a filtered, paginated list of cheques, newest cheque date first.
// @Tags cheques
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Param   status query string false "Filter by status" Enums(pending, deposited, cleared, bounced, cancelled)
// @Param   type query string false "Filter by type" Enums(received, issued)
// @Param   supplierId query string false "Filter by supplier"
// @Param   customerId query string false "Filter by customer"
// @Param   dueDateFrom query string false "Cheque date lower bound (YYYY-MM-DD)"
// @Param   dueDateTo query string false "Cheque date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=[]dto.ChequeResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques [get]
func (h *chequeHandler) listCheques(c *gin.Context) {
	var req dto.ListChequesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindingError(c, err)
		return
	}
	req.Page, req.Limit = normalizePage(req.Page, req.Limit)

	cheques, total, err := h.chequeService.ListCheques(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to list cheques")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessPaginated(dto.ToListChequeResponse(cheques), dto.NewPagination(req.Page, req.Limit, total)))
}

// getCheque godoc
// @Summary Get a cheque by ID
// @Description Retrieves a specific cheque by its ID
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.Envelope{data=dto.ChequeResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques/{id} [get]
func (h *chequeHandler) getCheque(c *gin.Context) {
	chequeID := c.Param("id")

	cheque, err := h.chequeService.GetChequeByID(c.Request.Context(), chequeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve cheque")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToChequeResponse(cheque)))
}

// updateCheque godoc
// @Summary Update a cheque
// @Description Replaces a cheque's details after full re-validation.
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   cheque body dto.SaveChequeRequest true "Cheque details"
// @Success 200 {object} dto.Envelope{data=dto.ChequeResponse}
// @Failure 400 {object} dto.Envelope "Validation failed"
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques/{id} [put]
func (h *chequeHandler) updateCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID := c.Param("id")

	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.SaveChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := h.chequeService.UpdateCheque(c.Request.Context(), chequeID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update cheque")
		return
	}

	logger.Info("Cheque updated", slog.String("cheque_id", chequeID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(dto.ToChequeResponse(updated), "Cheque updated successfully"))
}

// updateChequeStatus godoc
// @Summary Update a cheque's status
// @Description Moves a cheque to a new status, re-validates the whole record and appends an entry to the status history.
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   status body dto.UpdateChequeStatusRequest true "New status plus any bank processing fields"
// @Success 200 {object} dto.Envelope{data=dto.ChequeResponse}
// @Failure 400 {object} dto.Envelope "Validation failed or invalid transition"
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques/{id}/status [patch]
func (h *chequeHandler) updateChequeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID := c.Param("id")

	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := h.chequeService.UpdateChequeStatus(c.Request.Context(), chequeID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update cheque status")
		return
	}

	logger.Info("Cheque status updated",
		slog.String("cheque_id", chequeID),
		slog.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(dto.ToChequeResponse(updated), "Cheque status updated successfully"))
}

// deleteCheque godoc
// @Summary Delete a cheque
// @Description Removes a cheque and its status history.
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques/{id} [delete]
func (h *chequeHandler) deleteCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID := c.Param("id")

	if err := h.chequeService.DeleteCheque(c.Request.Context(), chequeID); err != nil {
		respondError(c, err, "Failed to delete cheque")
		return
	}

	logger.Info("Cheque deleted", slog.String("cheque_id", chequeID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(nil, "Cheque deleted successfully"))
}

// getStatusHistory godoc
// @Summary Get a cheque's status history
// @Description Retrieves a cheque's status changes, oldest first.
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.Envelope{data=[]dto.ChequeStatusChangeResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /cheques/{id}/history [get]
func (h *chequeHandler) getStatusHistory(c *gin.Context) {
	chequeID := c.Param("id")

	history, err := h.chequeService.GetStatusHistory(c.Request.Context(), chequeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve status history")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToListStatusChangeResponse(history)))
}
