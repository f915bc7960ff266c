package out

import (
	"context"

	"writingbuddy/internal/modules/manuscript/domain"
)

type EntryAppender interface {
	Append(ctx context.Context, path string, entry domain.Entry) (int, error)
}

type HistoryStore interface {
	Record(ctx context.Context, record domain.Record) error
	Recent(ctx context.Context, limit int) ([]domain.Record, error)
}
