package in

import (
	"context"

	"writingbuddy/internal/modules/session/dto"
)

// Usecase owns the single writing session of the process. Press, Tick and
// Frame never fail; only Finish touches the outside world.
type Usecase interface {
	Press(input dto.KeyInput) dto.KeyOutput
	Tick() dto.TickOutput
	Frame(input dto.FrameInput) dto.FrameOutput
	Pending(ctx context.Context) (dto.PendingOutput, error)
	Finish(ctx context.Context) (dto.FinishOutput, error)
}
