package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

const hrShiftsPath = "/hr/shifts"

type ShiftHandler interface {
	ListShifts(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

// ListShifts handles GET /hr/shifts
func (h *shiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, employees, err := h.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"shifts":    shift.NewShiftResponses(shifts),
		"employees": user.NewUserResponses(employees),
	})
}

// AssignShift handles POST /hr/shifts
func (h *shiftHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := shift.AssignShiftRequest{
		EmployeeID: r.PostFormValue("employee_id"),
		ShiftType:  r.PostFormValue("shift_type"),
		StartTime:  r.PostFormValue("start_time"),
		EndTime:    r.PostFormValue("end_time"),
		Day:        r.PostFormValue("day"),
	}

	if _, err := h.shiftService.Assign(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrShiftsPath, response.FlashSuccess, "Shift assigned!")
}
