package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	fileService file.FileService
}

func NewDocumentService(documentRepository document.DocumentRepository, fileService file.FileService) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepository,
		fileService:        fileService,
	}
}

// List implements document.DocumentService.
func (s *DocumentServiceImpl) List(ctx context.Context) ([]document.Document, error) {
	docs, err := s.DocumentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// Upload implements document.DocumentService.
func (s *DocumentServiceImpl) Upload(ctx context.Context, uploader user.User, req document.UploadDocumentRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, req.File, req.FileHeader.Filename)
	if err != nil {
		if errors.Is(err, file.ErrInvalidFileType) {
			return document.Document{}, validator.ValidationErrors{{Field: "file", Message: document.ErrInvalidFileType.Error()}}
		}
		return document.Document{}, err
	}

	created, err := s.DocumentRepository.Create(ctx, document.Document{
		Title:      strings.TrimSpace(req.Title),
		File:       path,
		UploadedBy: uploader.ID,
		IsPolicy:   req.IsPolicy,
	})
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, path); delErr != nil {
			slog.Warn("failed to remove orphaned document", "path", path, "error", delErr)
		}
		return document.Document{}, fmt.Errorf("failed to save document: %w", err)
	}
	return created, nil
}
