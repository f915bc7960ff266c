package in

import (
	"context"

	sessiondto "writingbuddy/internal/modules/session/dto"
	sessionin "writingbuddy/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Pending(ctx context.Context) (sessiondto.PendingOutput, error) {
	return h.usecase.Pending(ctx)
}

func (h CLIHandler) Finish(ctx context.Context) (sessiondto.FinishOutput, error) {
	return h.usecase.Finish(ctx)
}
