package postgresql

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (title, file, uploaded_by, is_policy)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, file, uploaded_by, uploaded_at, is_policy
	`

	var created document.Document
	err := q.QueryRow(ctx, query, d.Title, d.File, d.UploadedBy, d.IsPolicy).Scan(
		&created.ID,
		&created.Title,
		&created.File,
		&created.UploadedBy,
		&created.UploadedAt,
		&created.IsPolicy,
	)
	if err != nil {
		return document.Document{}, err
	}
	return created, nil
}

// List implements document.DocumentRepository. Policies come first.
func (r *documentRepositoryImpl) List(ctx context.Context) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.title, d.file, d.uploaded_by, d.uploaded_at, d.is_policy, ` + displayName("u") + `
		FROM documents d
		INNER JOIN users u ON u.id = d.uploaded_by
		ORDER BY d.is_policy DESC, d.uploaded_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []document.Document{}
	for rows.Next() {
		var d document.Document
		var uploader string
		if err := rows.Scan(&d.ID, &d.Title, &d.File, &d.UploadedBy, &d.UploadedAt, &d.IsPolicy, &uploader); err != nil {
			return nil, err
		}
		d.UploaderName = &uploader
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
