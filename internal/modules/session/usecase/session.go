package usecase

import (
	"context"
	"errors"

	"writingbuddy/internal/modules/session/domain"
	sessiondto "writingbuddy/internal/modules/session/dto"
	sessionin "writingbuddy/internal/modules/session/port/in"
	"writingbuddy/internal/modules/session/service"
	apperrors "writingbuddy/internal/platform/errors"
)

// Interactor holds the one session of the process. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Interactor struct {
	svc     *service.SessionService
	session domain.Session
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc, session: svc.Begin()}
}

func (i *Interactor) Press(input sessiondto.KeyInput) sessiondto.KeyOutput {
	next, effect := i.svc.Handle(i.session, toEvent(input))
	i.session = next
	return sessiondto.KeyOutput{
		Effect:  effect.String(),
		Mode:    next.Mode.String(),
		Quit:    effect == domain.EffectQuit,
		Blocked: effect == domain.EffectBlocked,
	}
}

func (i *Interactor) Tick() sessiondto.TickOutput {
	next, discarded, reset := i.svc.Tick(i.session)
	i.session = next
	return sessiondto.TickOutput{Reset: reset, DiscardedWords: discarded}
}

func (i *Interactor) Frame(input sessiondto.FrameInput) sessiondto.FrameOutput {
	now := i.svc.Now()
	s := i.session
	projection := domain.Project(s.Body, input.Columns, input.Rows)
	report := s.Goals(now)
	return sessiondto.FrameOutput{
		Mode:           s.Mode.String(),
		Title:          domain.ExpandTabs(s.Title),
		Text:           projection.Text,
		CursorColumn:   projection.Column,
		CursorRow:      projection.Row,
		HasText:        s.HasText(),
		StrictMode:     s.Settings.StrictMode,
		CanStopWriting: s.CanStopWriting(now),
		Urgency:        s.Urgency(now).String(),
		Words:          report.WordProgress(),
		WordStatus:     report.WordStatus.String(),
		Time:           report.TimeProgress(),
		TimeStatus:     report.TimeStatus.String(),
	}
}

func (i *Interactor) Pending(ctx context.Context) (sessiondto.PendingOutput, error) {
	if !i.session.HasText() {
		return sessiondto.PendingOutput{}, nil
	}
	path, err := i.svc.Destination(ctx, i.session)
	if err != nil {
		return sessiondto.PendingOutput{}, err
	}
	return sessiondto.PendingOutput{HasText: true, Path: path}, nil
}

// Finish stores the session text if there is any. An empty session is not
// an error: Stored is simply false.
func (i *Interactor) Finish(ctx context.Context) (sessiondto.FinishOutput, error) {
	summary, path, err := i.svc.Store(ctx, i.session)
	out := sessiondto.FinishOutput{
		Path:          path,
		Title:         summary.Title,
		Words:         summary.Words,
		ActiveSeconds: int(summary.Active.Seconds()),
		Resets:        summary.Resets,
		StartedAt:     summary.StartedAt,
		FinishedAt:    summary.FinishedAt,
	}
	if errors.Is(err, apperrors.ErrEmptyManuscript) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	out.Stored = true
	return out, nil
}

func toEvent(input sessiondto.KeyInput) domain.Event {
	switch input.Kind {
	case sessiondto.KeyCharacter:
		return domain.Character(input.Rune)
	case sessiondto.KeyEnter:
		return domain.Enter()
	case sessiondto.KeyBackspace:
		return domain.Backspace()
	case sessiondto.KeyEscape:
		return domain.Escape()
	default:
		return domain.Other()
	}
}
