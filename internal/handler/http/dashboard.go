package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the counts for the principal's role
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, result)
}
