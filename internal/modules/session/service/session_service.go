package service

import (
	"context"
	"fmt"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/ncruces/go-strftime"

	"writingbuddy/internal/modules/session/domain"
	sessionout "writingbuddy/internal/modules/session/port/out"
	"writingbuddy/internal/platform/clock"
	apperrors "writingbuddy/internal/platform/errors"
)

type SessionService struct {
	clock       clock.Clock
	logger      hclog.Logger
	store       sessionout.ManuscriptStore
	settings    domain.Settings
	titleFormat string
}

func NewSessionService(clock clock.Clock, logger hclog.Logger, store sessionout.ManuscriptStore, settings domain.Settings, titleFormat string) *SessionService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SessionService{
		clock:       clock,
		logger:      logger.Named("session"),
		store:       store,
		settings:    settings.Normalize(),
		titleFormat: titleFormat,
	}
}

func (s *SessionService) Now() time.Time { return s.clock.Now() }

// Begin opens the session in title entry with the formatted default title.
func (s *SessionService) Begin() domain.Session {
	now := s.clock.Now()
	title := ""
	if s.titleFormat != "" {
		title = strftime.Format(s.titleFormat, now)
	}
	s.logger.Info("session started",
		"title", title,
		"word_goal", s.settings.WordGoal,
		"time_goal", s.settings.TimeGoal,
		"strict", s.settings.StrictMode,
		"backspace", s.settings.BackspaceEnabled,
		"keystroke_timeout", s.settings.KeystrokeTimeout,
	)
	return domain.NewSession(title, s.settings, now)
}

func (s *SessionService) Handle(session domain.Session, ev domain.Event) (domain.Session, domain.Effect) {
	now := s.clock.Now()
	next, effect := session.Apply(ev, now)
	switch effect {
	case domain.EffectStartedWriting:
		s.logger.Info("writing started", "title", next.Title)
	case domain.EffectStoppedWriting:
		s.logger.Info("writing stopped", "words", domain.WordCount(next.Body), "active", next.Elapsed(now))
	case domain.EffectBlocked:
		report := next.Goals(now)
		s.logger.Debug("escape blocked by strict mode", "words", report.Words, "word_goal", report.WordGoal, "active", report.Elapsed, "time_goal", report.TimeGoal)
	case domain.EffectQuit:
		s.logger.Info("quit requested")
	}
	return next, effect
}

// Tick runs the idle monitor and returns the number of words a reset threw
// away.
func (s *SessionService) Tick(session domain.Session) (domain.Session, int, bool) {
	next, reset := session.CheckIdle(s.clock.Now())
	if !reset {
		return session, 0, false
	}
	discarded := domain.WordCount(session.Body)
	s.logger.Warn("idle timeout reset the text", "discarded_words", discarded, "timeout", s.settings.KeystrokeTimeout, "resets", next.Resets)
	return next, discarded, true
}

func (s *SessionService) Destination(ctx context.Context, session domain.Session) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("manuscript store is not configured")
	}
	return s.store.Destination(ctx, session.StartedAt)
}

// Store hands the finished session to the manuscript store. Sessions without
// text are not stored.
func (s *SessionService) Store(ctx context.Context, session domain.Session) (domain.Summary, string, error) {
	summary := session.Summarize(s.clock.Now())
	if !session.HasText() {
		s.logger.Info("nothing to store")
		return summary, "", apperrors.ErrEmptyManuscript
	}
	if s.store == nil {
		return summary, "", fmt.Errorf("manuscript store is not configured")
	}
	path, err := s.store.Store(ctx, summary)
	if err != nil {
		s.logger.Error("store manuscript", "error", err)
		return summary, "", err
	}
	s.logger.Info("manuscript stored", "path", path, "words", summary.Words, "active", summary.Active, "resets", summary.Resets)
	return summary, path, nil
}
