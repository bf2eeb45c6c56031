package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// uploadAccess maps the top-level upload folder to who may read it.
// Folders not listed are admin/HR only.
var uploadAccess = map[string]user.Predicate{
	"profile_pics": user.Authenticated,
	"resumes":      user.IsAdminOrHR,
	"company_docs": user.IsAdminOrHR,
}

func uploadPredicate(p string) user.Predicate {
	folder, _, _ := strings.Cut(p, "/")
	if allowed, ok := uploadAccess[folder]; ok {
		return allowed
	}
	return user.IsAdminOrHR
}

type UploadHandler interface {
	ServeUpload(w http.ResponseWriter, r *http.Request)
}

type uploadHandlerImpl struct {
	storage storage.FileStorage
}

func NewUploadHandler(fileStorage storage.FileStorage) UploadHandler {
	return &uploadHandlerImpl{storage: fileStorage}
}

// ServeUpload handles GET /uploads/*
func (h *uploadHandlerImpl) ServeUpload(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if p == "" {
		response.NotFound(w, "File not found")
		return
	}

	principal := principalFrom(r)
	if !uploadPredicate(p)(principal) {
		slog.Info("access denied", "user_id", principal.ID, "role", principal.Role, "path", r.URL.Path)
		response.Redirect(w, "/")
		return
	}

	rc, err := h.storage.Download(r.Context(), p)
	if err != nil {
		if !errors.Is(err, storage.ErrFileNotFound) && !errors.Is(err, storage.ErrInvalidPath) {
			slog.Error("failed to open upload", "path", p, "error", err)
		}
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		slog.Warn("failed to stream upload", "path", p, "error", err)
	}
}
