package document

import "time"

type Document struct {
	ID         string
	Title      string
	File       string // storage path
	UploadedBy string
	UploadedAt time.Time
	IsPolicy   bool

	// DTO
	UploaderName *string
}
