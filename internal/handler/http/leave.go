package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const (
	employeeLeavePath = "/employee/leave"
	hrLeavesPath      = "/hr/leaves"
)

type LeaveHandler interface {
	// Employee
	MyRequests(w http.ResponseWriter, r *http.Request)
	ApplyRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)

	// HR / admin
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// MyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.MyRequests(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"leaves": leave.NewLeaveRequestResponses(requests),
	})
}

// ApplyRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApplyRequest(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		slog.Error("ApplyRequest parse error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := leave.ApplyLeaveRequest{
		LeaveType: r.PostFormValue("leave_type"),
		StartDate: r.PostFormValue("start_date"),
		EndDate:   r.PostFormValue("end_date"),
		Reason:    r.PostFormValue("reason"),
	}

	if _, err := l.leaveService.Apply(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, employeeLeavePath, response.FlashSuccess, "Leave applied!")
}

// CancelRequest implements LeaveHandler. Requests that are no longer
// pending are left alone without a message.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	cancelled, err := l.leaveService.Cancel(r.Context(), principalFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !cancelled {
		response.Redirect(w, employeeLeavePath)
		return
	}
	response.RedirectWithFlash(w, employeeLeavePath, response.FlashSuccess, "Leave cancelled")
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"leaves": leave.NewLeaveRequestResponses(requests),
	})
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	_, err := l.leaveService.Approve(r.Context(), chi.URLParam(r, "id"))
	l.afterDecision(w, err, response.FlashSuccess, "Leave request approved!")
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	_, err := l.leaveService.Reject(r.Context(), chi.URLParam(r, "id"))
	l.afterDecision(w, err, response.FlashWarning, "Leave request rejected!")
}

func (l *LeaveHandlerImpl) afterDecision(w http.ResponseWriter, err error, level response.FlashLevel, message string) {
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			response.RedirectWithFlash(w, hrLeavesPath, response.FlashWarning, "This leave request has already been processed.")
			return
		}
		response.HandleError(w, err)
		return
	}
	response.RedirectWithFlash(w, hrLeavesPath, level, message)
}
