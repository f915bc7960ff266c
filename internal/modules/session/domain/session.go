package domain

import (
	"time"
	"unicode/utf8"
)

// Settings are fixed for the lifetime of a session. Zero goals and a zero
// timeout mean unset.
type Settings struct {
	TimeGoal         time.Duration
	WordGoal         int
	StrictMode       bool
	BackspaceEnabled bool
	KeystrokeTimeout time.Duration
}

func (s Settings) Normalize() Settings {
	if s.TimeGoal < 0 {
		s.TimeGoal = 0
	}
	if s.WordGoal < 0 {
		s.WordGoal = 0
	}
	if s.KeystrokeTimeout < 0 {
		s.KeystrokeTimeout = 0
	}
	return s
}

// Session is the single writing session of a process. It is a plain value:
// Apply and CheckIdle return the next state instead of mutating in place.
type Session struct {
	Title    string
	Body     string
	Mode     Mode
	Timer    Stopwatch
	Settings Settings
	// LastKeystroke is the zero time when unset. It is only set while writing.
	LastKeystroke time.Time
	StartedAt     time.Time
	Resets        int
}

func NewSession(title string, settings Settings, startedAt time.Time) Session {
	return Session{
		Title:     title,
		Mode:      ModeTitleEntry,
		Settings:  settings.Normalize(),
		StartedAt: startedAt,
	}
}

// Apply runs one event through the transition table and returns the next
// state. Apply never fails; events that do not apply are ignored.
func (s Session) Apply(ev Event, now time.Time) (Session, Effect) {
	switch s.Mode {
	case ModeTitleEntry:
		return s.applyTitleEntry(ev)
	case ModeWriting:
		return s.applyWriting(ev, now)
	}
	return s, EffectIgnored
}

func (s Session) applyTitleEntry(ev Event) (Session, Effect) {
	switch ev.Kind {
	case EventEnter:
		s.Mode = ModeWriting
		return s, EffectStartedWriting
	case EventCharacter:
		s.Title += string(ev.Rune)
		return s, EffectUpdated
	case EventBackspace:
		if s.Title == "" {
			return s, EffectIgnored
		}
		s.Title = dropLastRune(s.Title)
		return s, EffectUpdated
	case EventEscape:
		return s, EffectQuit
	}
	return s, EffectIgnored
}

func (s Session) applyWriting(ev Event, now time.Time) (Session, Effect) {
	switch ev.Kind {
	case EventEnter:
		s.Body += "\n"
		return s, EffectUpdated
	case EventCharacter:
		s.LastKeystroke = now
		if !s.Timer.Running() {
			s.Timer = s.Timer.Start(now)
		}
		s.Body += string(ev.Rune)
		return s, EffectUpdated
	case EventBackspace:
		if !s.Settings.BackspaceEnabled || s.Body == "" {
			return s, EffectIgnored
		}
		s.Body = dropLastRune(s.Body)
		return s, EffectUpdated
	case EventEscape:
		if !s.CanStopWriting(now) {
			return s, EffectBlocked
		}
		s.Timer = s.Timer.Stop(now)
		s.LastKeystroke = time.Time{}
		s.Mode = ModeTitleEntry
		return s, EffectStoppedWriting
	}
	return s, EffectIgnored
}

// CanStopWriting reports whether Escape would leave writing mode right now.
func (s Session) CanStopWriting(now time.Time) bool {
	return !s.Settings.StrictMode || s.AchievedGoals(now)
}

func (s Session) AchievedGoals(now time.Time) bool {
	return s.Goals(now).Achieved()
}

func (s Session) Goals(now time.Time) GoalReport {
	return EvaluateGoals(s.Body, s.Timer.Elapsed(now), s.Settings)
}

func (s Session) Elapsed(now time.Time) time.Duration {
	return s.Timer.Elapsed(now)
}

func (s Session) HasText() bool { return s.Body != "" }

func (s Session) HasKeystroke() bool { return !s.LastKeystroke.IsZero() }

func dropLastRune(text string) string {
	_, size := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-size]
}
