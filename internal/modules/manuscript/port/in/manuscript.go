package in

import (
	"context"

	"writingbuddy/internal/modules/manuscript/dto"
)

type Usecase interface {
	Destination(ctx context.Context, input dto.DestinationInput) (string, error)
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryOutput, error)
}
