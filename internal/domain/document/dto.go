package document

import (
	"mime/multipart"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type UploadDocumentRequest struct {
	Title    string
	IsPolicy bool

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 200 {
		errs.Add("title", "title must not exceed 200 characters")
	}
	if r.File == nil || r.FileHeader == nil {
		errs.Add("file", "file is required")
	}

	return errs.Err()
}

type DocumentResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	UploadedBy   string  `json:"uploaded_by"`
	UploaderName *string `json:"uploader_name,omitempty"`
	UploadedAt   string  `json:"uploaded_at"`
	IsPolicy     bool    `json:"is_policy"`
}

func NewDocumentResponses(docs []Document, fileURL func(string) string) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentResponse{
			ID:           d.ID,
			Title:        d.Title,
			URL:          fileURL(d.File),
			UploadedBy:   d.UploadedBy,
			UploaderName: d.UploaderName,
			UploadedAt:   d.UploadedAt.Format(time.RFC3339),
			IsPolicy:     d.IsPolicy,
		})
	}
	return out
}
