package postgresql

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at, author_id
	`

	var created announcement.Announcement
	err := q.QueryRow(ctx, query, a.Title, a.Content, a.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.Content,
		&created.CreatedAt,
		&created.AuthorID,
	)
	if err != nil {
		return announcement.Announcement{}, err
	}
	return created, nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.title, a.content, a.created_at, a.author_id, ` + displayName("u") + `
		FROM announcements a
		INNER JOIN users u ON u.id = a.author_id
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []announcement.Announcement{}
	for rows.Next() {
		var a announcement.Announcement
		var author string
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.AuthorID, &author); err != nil {
			return nil, err
		}
		a.AuthorName = &author
		items = append(items, a)
	}
	return items, rows.Err()
}
