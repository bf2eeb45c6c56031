package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

const employeeAttendancePath = "/employee/attendance"

type AttendanceHandler interface {
	MyAttendance(w http.ResponseWriter, r *http.Request)
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	MonitorAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

type monitorRow struct {
	Employee   user.UserResponse              `json:"employee"`
	Attendance *attendance.AttendanceResponse `json:"attendance"`
}

// MyAttendance handles GET /employee/attendance
func (h *attendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	today, history, err := h.attendanceService.Mine(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, attendance.MyAttendanceResponse{
		Today:   attendance.NewAttendanceResponse(today),
		History: attendance.NewAttendanceResponses(history),
	})
}

// RecordAttendance handles POST /employee/attendance
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	action, err := attendance.ParseAction(r.PostFormValue("action"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	_, applied, err := h.attendanceService.Record(r.Context(), principalFrom(r), action)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch {
	case applied && action == attendance.ActionCheckIn:
		response.RedirectWithFlash(w, employeeAttendancePath, response.FlashSuccess, "Checked in.")
	case applied:
		response.RedirectWithFlash(w, employeeAttendancePath, response.FlashSuccess, "Checked out.")
	case action == attendance.ActionCheckIn:
		response.RedirectWithFlash(w, employeeAttendancePath, response.FlashWarning, "You have already checked in today.")
	default:
		response.RedirectWithFlash(w, employeeAttendancePath, response.FlashWarning, "You have already checked out today.")
	}
}

// MonitorAttendance handles GET /hr/monitor
func (h *attendanceHandlerImpl) MonitorAttendance(w http.ResponseWriter, r *http.Request) {
	entries, err := h.attendanceService.Monitor(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([]monitorRow, 0, len(entries))
	for _, e := range entries {
		row := monitorRow{Employee: user.NewUserResponse(e.Employee)}
		if e.Attendance != nil {
			a := attendance.NewAttendanceResponse(*e.Attendance)
			row.Attendance = &a
		}
		rows = append(rows, row)
	}

	response.View(w, r, map[string]interface{}{
		"employees": rows,
	})
}
