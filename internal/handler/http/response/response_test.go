package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestFlash_SurvivesOneRedirect(t *testing.T) {
	// Redirect sets the cookie
	rec := httptest.NewRecorder()
	RedirectWithFlash(rec, "/hr/announcements", FlashSuccess, "Announcement posted.")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/hr/announcements", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// Next view consumes it
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hr/announcements", nil)
	req.AddCookie(cookies[0])
	View(rec, req, map[string]string{"page": "announcements"})

	resp := decode(t, rec)
	require.NotNil(t, resp.Flash)
	assert.Equal(t, FlashSuccess, resp.Flash.Level)
	assert.Equal(t, "Announcement posted.", resp.Flash.Message)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookieName, cleared[0].Name)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestConsumeFlash_IgnoresGarbage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64"})

	assert.Nil(t, ConsumeFlash(rec, req))
}

func TestView_WithoutFlash(t *testing.T) {
	rec := httptest.NewRecorder()
	View(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec).Flash)
	assert.Empty(t, rec.Result().Cookies())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "title", Message: "title is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrapped not found", fmt.Errorf("load: %w", user.ErrUserNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"task not found", project.ErrTaskNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate username", user.ErrUsernameExists, http.StatusConflict, "CONFLICT"},
		{"already processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"invalid leave transition", leave.ErrInvalidTransition, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleError_InvalidCredentialsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, auth.ErrInvalidCredentials)

	assert.Equal(t, "Invalid credentials", decode(t, rec).Error.Message)
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "progress", Message: "progress must be a whole number"}})

	assert.Equal(t, map[string]string{"progress": "progress must be a whole number"}, decode(t, rec).Error.Details)
}
