package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
	}
}

// registerCustomerRoutes registers all customer-related routes.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description Persists a new customer with personal info and credit profile. The customer code must be unique.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.Envelope{data=dto.CustomerResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Customer code already exists"
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created",
		slog.String("customer_id", created.CustomerID),
		slog.String("customer_code", created.CustomerCode))
	c.JSON(http.StatusCreated, dto.SuccessWithMessage(dto.ToCustomerResponse(created), "Customer created successfully"))
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves a paginated list of customers.
// @Tags customers
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.Envelope{data=[]dto.CustomerResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err)
		return
	}
	page, limit := normalizePage(params.Page, params.Limit)

	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessPaginated(dto.ToListCustomerResponse(customers), dto.NewPagination(page, limit, total)))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Description Retrieves a specific customer by its ID
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.Envelope{data=dto.CustomerResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customerID := c.Param("id")

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToCustomerResponse(customer)))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates a customer's personal info, credit profile or status. The customer code is immutable.
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.CustomerResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updated, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}

	logger.Info("Customer updated", slog.String("customer_id", customerID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(dto.ToCustomerResponse(updated), "Customer updated successfully"))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Removes a customer record.
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	c.JSON(http.StatusOK, dto.SuccessWithMessage(nil, "Customer deleted successfully"))
}
