package out

import (
	"context"
	"time"

	"writingbuddy/internal/modules/session/domain"
)

type ManuscriptStore interface {
	Destination(ctx context.Context, startedAt time.Time) (string, error)
	Store(ctx context.Context, summary domain.Summary) (string, error)
}
