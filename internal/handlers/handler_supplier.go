package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{
		supplierService: ss,
	}
}

// registerSupplierRoutes registers all supplier-related routes.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.POST("", h.createSupplier)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deactivateSupplier)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Description Persists a new supplier record.
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.Envelope{data=dto.SupplierResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	created, err := h.supplierService.CreateSupplier(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}

	logger.Info("Supplier created", slog.String("supplier_id", created.SupplierID))
	c.JSON(http.StatusCreated, dto.SuccessWithMessage(dto.ToSupplierResponse(created), "Supplier created successfully"))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves a paginated list of suppliers.
// @Tags suppliers
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.Envelope{data=[]dto.SupplierResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	var params dto.ListSuppliersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err)
		return
	}
	page, limit := normalizePage(params.Page, params.Limit)

	suppliers, total, err := h.supplierService.ListSuppliers(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessPaginated(dto.ToListSupplierResponse(suppliers), dto.NewPagination(page, limit, total)))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Description Retrieves a specific supplier by its ID
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.Envelope{data=dto.SupplierResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	supplierID := c.Param("id")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToSupplierResponse(supplier)))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Updates a supplier's details. Only provided fields change.
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.SupplierResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(dto.ToSupplierResponse(updated), "Supplier updated successfully"))
}

// deactivateSupplier godoc
// @Summary Deactivate a supplier
// @Description Marks a supplier as inactive. Existing cheques keep referencing it.
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deactivateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.supplierService.DeactivateSupplier(c.Request.Context(), supplierID, updaterUserID); err != nil {
		respondError(c, err, "Failed to deactivate supplier")
		return
	}

	logger.Info("Supplier deactivated", slog.String("supplier_id", supplierID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(nil, "Supplier deactivated successfully"))
}
