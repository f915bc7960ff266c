package in

import (
	sessiondto "writingbuddy/internal/modules/session/dto"
	sessionin "writingbuddy/internal/modules/session/port/in"
)

type TUIHandler struct {
	usecase sessionin.Usecase
}

func NewTUIHandler(usecase sessionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Type(r rune) sessiondto.KeyOutput {
	return h.usecase.Press(sessiondto.KeyInput{Kind: sessiondto.KeyCharacter, Rune: r})
}

func (h TUIHandler) Press(kind string) sessiondto.KeyOutput {
	return h.usecase.Press(sessiondto.KeyInput{Kind: kind})
}

func (h TUIHandler) Tick() sessiondto.TickOutput {
	return h.usecase.Tick()
}

func (h TUIHandler) Frame(columns, rows int) sessiondto.FrameOutput {
	return h.usecase.Frame(sessiondto.FrameInput{Columns: columns, Rows: rows})
}
