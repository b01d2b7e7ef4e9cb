package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/dto"
	"github.com/cashflowhq/cashflow_backend/internal/utils/cheques"

	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the dashboard views. Every call
// recomputes from the live cheque collection; nothing is cached.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// RegisterDashboardRoutes registers all dashboard-related routes.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/metrics", h.getMetrics)
		dashboard.GET("/pending", h.getPendingCheques)
		dashboard.GET("/upcoming", h.getUpcomingCheques)
	}
}

// getMetrics godoc
// @Summary Dashboard metrics
// @Description Computes counts and amount totals per cheque status over the whole cheque collection.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.Envelope{data=cheques.Metrics}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (h *dashboardHandler) getMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.GetMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute dashboard metrics")
		return
	}

	c.JSON(http.StatusOK, dto.Success(metrics))
}

// getPendingCheques godoc
// @Summary Pending cheques
// @Description Lists issued cheques due by the end of today plus their summed amount.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.Envelope{data=dto.PendingChequesResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /dashboard/pending [get]
func (h *dashboardHandler) getPendingCheques(c *gin.Context) {
	pending, totalAmount, err := h.dashboardService.GetPendingCheques(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute pending cheques")
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.PendingChequesResponse{
		Cheques:     pending,
		TotalAmount: totalAmount,
	}))
}

// getUpcomingCheques godoc
// @Summary Upcoming cheques
// @Description Lists issued cheques due within the next seven days, each tagged with its due-date badge. Optional query filters narrow the slice further.
// @Tags dashboard
// @Produce  json
// @Param   dueDateFrom query string false "Due date lower bound (YYYY-MM-DD)"
// @Param   dueDateTo query string false "Due date upper bound (YYYY-MM-DD)"
// @Param   status query string false "Cheque status"
// @Param   supplierId query string false "Supplier ID"
// @Success 200 {object} dto.Envelope{data=[]dto.UpcomingChequeResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /dashboard/upcoming [get]
func (h *dashboardHandler) getUpcomingCheques(c *gin.Context) {
	var spec cheques.FilterSpec
	if err := c.ShouldBindQuery(&spec); err != nil {
		bindingError(c, err)
		return
	}

	upcoming, err := h.dashboardService.GetUpcomingCheques(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute upcoming cheques")
		return
	}

	ref := cheques.NewTimeRefs(time.Now())
	c.JSON(http.StatusOK, dto.Success(dto.ToUpcomingResponse(ref, cheques.Filter(upcoming, spec))))
}
