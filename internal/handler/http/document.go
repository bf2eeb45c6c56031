package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
)

const hrDocumentsPath = "/hr/documents"

type DocumentHandler interface {
	ListDocuments(w http.ResponseWriter, r *http.Request)
	UploadDocument(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
	fileService     file.FileService
}

func NewDocumentHandler(documentService document.DocumentService, fileService file.FileService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
		fileService:     fileService,
	}
}

// ListDocuments handles GET /hr/documents
func (h *documentHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"docs": document.NewDocumentResponses(docs, h.fileService.FileURL),
	})
}

// UploadDocument handles POST /hr/documents
func (h *documentHandlerImpl) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	f, header, err := formFile(r, "file")
	if err != nil {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if f != nil {
		defer f.Close()
	}

	req := document.UploadDocumentRequest{
		Title:      r.PostFormValue("title"),
		IsPolicy:   validator.ParseBool(r.PostFormValue("is_policy")),
		File:       f,
		FileHeader: header,
	}

	if _, err := h.documentService.Upload(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrDocumentsPath, response.FlashSuccess, "Document uploaded!")
}
