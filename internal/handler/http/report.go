package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Role head counts (admin only)
	GetRoles(w http.ResponseWriter, r *http.Request)

	// Latest system log entries
	GetMonitor(w http.ResponseWriter, r *http.Request)

	// Head count per department
	GetReports(w http.ResponseWriter, r *http.Request)

	// Tabular preview of a report type
	GetPreview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetRoles handles GET /company-admin/roles
func (h *reportHandlerImpl) GetRoles(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.Roles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, counts)
}

// GetMonitor handles GET /company-admin/monitor
func (h *reportHandlerImpl) GetMonitor(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reportService.Monitor(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"logs": systemlog.NewEntryResponses(entries),
	})
}

// GetReports handles GET /company-admin/reports
func (h *reportHandlerImpl) GetReports(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"dept_stats": stats,
	})
}

// GetPreview handles GET /company-admin/reports/preview/{type}
func (h *reportHandlerImpl) GetPreview(w http.ResponseWriter, r *http.Request) {
	preview, err := h.reportService.Preview(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, preview)
}
