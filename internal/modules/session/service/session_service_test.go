package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"writingbuddy/internal/modules/session/domain"
	"writingbuddy/internal/modules/session/service"
	"writingbuddy/internal/platform/logging"
)

type fixedClock struct{ now time.Time }

func (f *fixedClock) Now() time.Time { return f.now }

func TestBeginFormatsTitleFromClock(t *testing.T) {
	t.Parallel()
	clk := &fixedClock{now: time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)}
	s := service.NewSessionService(clk, nil, nil, domain.Settings{WordGoal: -1}, "## %Y-%m-%d")
	session := s.Begin()
	if session.Title != "## 2026-12-31" || !session.StartedAt.Equal(clk.now) {
		t.Fatalf("unexpected session start: %+v", session)
	}
	if session.Settings.WordGoal != 0 {
		t.Fatalf("expected normalized settings, got %+v", session.Settings)
	}
	if empty := service.NewSessionService(clk, nil, nil, domain.Settings{}, "").Begin(); empty.Title != "" {
		t.Fatalf("empty title format must give an empty title, got %q", empty.Title)
	}
}

func TestIdleResetIsLoggedWithoutText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	clk := &fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := service.NewSessionService(clk, logging.NewWithWriter(&buf, hclog.Debug), nil, domain.Settings{KeystrokeTimeout: time.Second}, "")

	session := s.Begin()
	session, _ = s.Handle(session, domain.Enter())
	for _, r := range "secret draft" {
		session, _ = s.Handle(session, domain.Character(r))
	}
	if _, _, reset := s.Tick(session); reset {
		t.Fatalf("unexpected reset without silence")
	}
	clk.now = clk.now.Add(2 * time.Second)
	session, discarded, reset := s.Tick(session)
	if !reset || discarded != 2 || session.Body != "" {
		t.Fatalf("expected reset discarding 2 words, got %v %d %q", reset, discarded, session.Body)
	}

	logged := buf.String()
	if !strings.Contains(logged, "idle timeout reset the text") || !strings.Contains(logged, "discarded_words=2") {
		t.Fatalf("expected reset to be logged, got:\n%s", logged)
	}
	if strings.Contains(logged, "secret") {
		t.Fatalf("body text must never be logged:\n%s", logged)
	}
}

func TestStoreWithoutStoreConfigured(t *testing.T) {
	t.Parallel()
	clk := &fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := service.NewSessionService(clk, nil, nil, domain.Settings{}, "")
	session := s.Begin()
	session, _ = s.Handle(session, domain.Enter())
	session, _ = s.Handle(session, domain.Character('x'))
	if _, _, err := s.Store(context.Background(), session); err == nil {
		t.Fatalf("expected error without a manuscript store")
	}
}
