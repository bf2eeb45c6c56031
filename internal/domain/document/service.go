package document

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type DocumentService interface {
	List(ctx context.Context) ([]Document, error)
	Upload(ctx context.Context, uploader user.User, req UploadDocumentRequest) (Document, error)
}
