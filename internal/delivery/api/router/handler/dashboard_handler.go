package handler

import (
	"net/http"

	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the tenant's summary view
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c echo.Context) error {
	identity, err := middleware.RequireIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.dashboardUC.Stats(c.Request().Context(), identity.TenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}
