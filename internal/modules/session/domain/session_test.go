package domain_test

import (
	"testing"
	"time"

	"writingbuddy/internal/modules/session/domain"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func at(seconds int) time.Time { return t0.Add(time.Duration(seconds) * time.Second) }

func typeText(t *testing.T, s domain.Session, text string, now time.Time) domain.Session {
	t.Helper()
	for _, r := range text {
		s, _ = s.Apply(domain.Character(r), now)
	}
	return s
}

func writing(settings domain.Settings) domain.Session {
	s := domain.NewSession("", settings, t0)
	s, _ = s.Apply(domain.Enter(), t0)
	return s
}

func TestTitleEntryTransitions(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("## 2026-03-01", domain.Settings{}, t0)
	if s.Mode != domain.ModeTitleEntry {
		t.Fatalf("expected title entry initially, got %s", s.Mode)
	}

	s, effect := s.Apply(domain.Character('!'), at(1))
	if effect != domain.EffectUpdated || s.Title != "## 2026-03-01!" {
		t.Fatalf("expected appended title, got %q (%s)", s.Title, effect)
	}
	s, _ = s.Apply(domain.Backspace(), at(1))
	s, _ = s.Apply(domain.Backspace(), at(1))
	if s.Title != "## 2026-03-0" {
		t.Fatalf("expected two runes removed, got %q", s.Title)
	}
	if s.Body != "" || s.HasKeystroke() || s.Timer.Running() {
		t.Fatalf("title typing must not touch body, keystroke or timer: %+v", s)
	}

	s, effect = s.Apply(domain.Enter(), at(2))
	if effect != domain.EffectStartedWriting || s.Mode != domain.ModeWriting {
		t.Fatalf("expected writing mode, got %s (%s)", s.Mode, effect)
	}
	if s.Timer.Running() {
		t.Fatalf("timer must start lazily on the first character")
	}
}

func TestTitleBackspaceOnEmptyIsIgnored(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("", domain.Settings{}, t0)
	next, effect := s.Apply(domain.Backspace(), t0)
	if effect != domain.EffectIgnored || next != s {
		t.Fatalf("expected ignored no-op, got %s", effect)
	}
}

func TestEscapeInTitleQuits(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("t", domain.Settings{}, t0)
	next, effect := s.Apply(domain.Escape(), t0)
	if effect != domain.EffectQuit || next != s {
		t.Fatalf("expected quit without state change, got %s", effect)
	}
}

func TestOtherEventsAreIgnored(t *testing.T) {
	t.Parallel()
	for _, s := range []domain.Session{domain.NewSession("t", domain.Settings{}, t0), writing(domain.Settings{})} {
		next, effect := s.Apply(domain.Other(), t0)
		if effect != domain.EffectIgnored || next != s {
			t.Fatalf("expected %s mode to ignore other events, got %s", s.Mode, effect)
		}
	}
}

func TestWritingStartsTimerOnFirstCharacter(t *testing.T) {
	t.Parallel()
	s := writing(domain.Settings{BackspaceEnabled: true})
	s, _ = s.Apply(domain.Enter(), at(1))
	if s.Body != "\n" || s.Timer.Running() || s.HasKeystroke() {
		t.Fatalf("enter must only insert a newline, got %+v", s)
	}
	s, _ = s.Apply(domain.Character('a'), at(10))
	if !s.Timer.Running() || !s.LastKeystroke.Equal(at(10)) {
		t.Fatalf("expected timer running and keystroke recorded")
	}
	s, _ = s.Apply(domain.Character('b'), at(15))
	if got := s.Elapsed(at(20)); got != 10*time.Second {
		t.Fatalf("expected 10s of writing, got %s", got)
	}
	if !s.LastKeystroke.Equal(at(15)) {
		t.Fatalf("expected keystroke at 15s, got %s", s.LastKeystroke)
	}
	if s.Body != "\nab" {
		t.Fatalf("unexpected body %q", s.Body)
	}
}

func TestBackspaceInWriting(t *testing.T) {
	t.Parallel()
	enabled := typeText(t, writing(domain.Settings{BackspaceEnabled: true}), "abc", at(1))
	enabled, effect := enabled.Apply(domain.Backspace(), at(2))
	if effect != domain.EffectUpdated || enabled.Body != "ab" {
		t.Fatalf("expected one rune removed, got %q", enabled.Body)
	}

	disabled := typeText(t, writing(domain.Settings{BackspaceEnabled: false}), "abc", at(1))
	disabled, effect = disabled.Apply(domain.Backspace(), at(2))
	if effect != domain.EffectIgnored || disabled.Body != "abc" {
		t.Fatalf("backspace disabled must keep body, got %q (%s)", disabled.Body, effect)
	}

	empty := writing(domain.Settings{BackspaceEnabled: true})
	if _, effect := empty.Apply(domain.Backspace(), at(1)); effect != domain.EffectIgnored {
		t.Fatalf("backspace on empty body must be ignored, got %s", effect)
	}

	multibyte := typeText(t, writing(domain.Settings{BackspaceEnabled: true}), "naïve é", at(1))
	multibyte, _ = multibyte.Apply(domain.Backspace(), at(2))
	if multibyte.Body != "naïve " {
		t.Fatalf("expected a whole rune removed, got %q", multibyte.Body)
	}
}

func TestStrictModeGate(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{WordGoal: 3, StrictMode: true}), "a b", at(1))
	if s.AchievedGoals(at(2)) {
		t.Fatalf("two words must not satisfy a goal of three")
	}
	blocked, effect := s.Apply(domain.Escape(), at(2))
	if effect != domain.EffectBlocked || blocked.Mode != domain.ModeWriting || blocked.Body != "a b" {
		t.Fatalf("expected escape to be blocked, got %s in %s", effect, blocked.Mode)
	}

	s = typeText(t, blocked, " c", at(3))
	if !s.AchievedGoals(at(3)) {
		t.Fatalf("three words must satisfy the goal")
	}
	s, effect = s.Apply(domain.Escape(), at(4))
	if effect != domain.EffectStoppedWriting || s.Mode != domain.ModeTitleEntry {
		t.Fatalf("expected title entry after goal, got %s (%s)", s.Mode, effect)
	}
	if s.Timer.Running() || s.HasKeystroke() {
		t.Fatalf("leaving writing must stop the timer and clear the keystroke")
	}
	if got := s.Elapsed(at(100)); got != 3*time.Second {
		t.Fatalf("stopped timer must keep 3s, got %s", got)
	}
}

func TestNonStrictBypass(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{WordGoal: 3, StrictMode: false}), "a b", at(1))
	s, effect := s.Apply(domain.Escape(), at(2))
	if effect != domain.EffectStoppedWriting || s.Mode != domain.ModeTitleEntry {
		t.Fatalf("non-strict escape must leave writing, got %s", s.Mode)
	}
}

func TestStrictTimeGate(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{TimeGoal: 60 * time.Second, StrictMode: true}), "x", at(0))
	if _, effect := s.Apply(domain.Escape(), at(59)); effect != domain.EffectBlocked {
		t.Fatalf("expected blocked before the time goal, got %s", effect)
	}
	if _, effect := s.Apply(domain.Escape(), at(60)); effect != domain.EffectStoppedWriting {
		t.Fatalf("expected release at the time goal, got %s", effect)
	}
}

func TestReenteringWritingResumesTimer(t *testing.T) {
	t.Parallel()
	s := typeText(t, writing(domain.Settings{}), "a", at(0))
	s, _ = s.Apply(domain.Escape(), at(5))
	s, _ = s.Apply(domain.Enter(), at(50))
	if s.Timer.Running() {
		t.Fatalf("timer must stay stopped until the next character")
	}
	s, _ = s.Apply(domain.Character('b'), at(100))
	if got := s.Elapsed(at(102)); got != 7*time.Second {
		t.Fatalf("expected accumulated 7s, got %s", got)
	}
	if s.Body != "ab" {
		t.Fatalf("body must survive mode switches, got %q", s.Body)
	}
}

func TestSettingsNormalize(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("", domain.Settings{TimeGoal: -1, WordGoal: -3, KeystrokeTimeout: -time.Second}, t0)
	if s.Settings.TimeGoal != 0 || s.Settings.WordGoal != 0 || s.Settings.KeystrokeTimeout != 0 {
		t.Fatalf("expected negative settings to become unset, got %+v", s.Settings)
	}
}
