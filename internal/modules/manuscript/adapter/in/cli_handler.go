package in

import (
	"context"

	"writingbuddy/internal/modules/manuscript/dto"
	manuscriptin "writingbuddy/internal/modules/manuscript/port/in"
)

type CLIHandler struct {
	usecase manuscriptin.Usecase
}

func NewCLIHandler(usecase manuscriptin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryOutput, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Limit: limit})
}
