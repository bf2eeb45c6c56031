package systemlog

import "context"

type SystemLogRepository interface {
	Append(ctx context.Context, e Entry) (Entry, error)
	// Recent returns the latest entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
