package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	List(ctx context.Context) ([]Document, error)
}
