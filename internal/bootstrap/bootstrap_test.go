package bootstrap_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"writingbuddy/internal/bootstrap"
	"writingbuddy/internal/platform/config"
	apperrors "writingbuddy/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestSessionSettingsConvertsSeconds(t *testing.T) {
	t.Parallel()
	s := config.Default()
	s.TimeGoal = 600
	s.WordGoal = 500
	s.KeystrokeTimeout = 5
	s.BackspaceActive = false
	got := bootstrap.SessionSettings(s)
	if got.TimeGoal != 10*time.Minute || got.WordGoal != 500 || got.KeystrokeTimeout != 5*time.Second || got.BackspaceEnabled || !got.StrictMode {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestLanguageFromSettingsWins(t *testing.T) {
	t.Parallel()
	s := config.Default()
	s.Language = "de"
	app, err := bootstrap.New(bootstrap.Options{Settings: s, WorkDir: t.TempDir(), Languages: []string{"en_US.UTF-8"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()
	if app.Text.Language() != "de" {
		t.Fatalf("expected german, got %s", app.Text.Language())
	}
}

func TestSessionStoresIntoWorkDirWithHistory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s := config.Default()
	s.HistoryDB = filepath.Join("state", "history.db")
	app, err := bootstrap.New(bootstrap.Options{
		Settings: s,
		WorkDir:  dir,
		Clock:    fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()

	session := app.NewSession()
	session.TUI.Press("enter")
	for _, r := range "morning pages" {
		session.TUI.Type(r)
	}
	pending, err := session.CLI.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	want := filepath.Join(dir, "2026-03.md")
	if !pending.HasText || pending.Path != want {
		t.Fatalf("unexpected pending output: %+v", pending)
	}
	out, err := session.CLI.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !out.Stored || out.Path != want {
		t.Fatalf("unexpected finish output: %+v", out)
	}
	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "## 2026-03-14\nmorning pages\n\n" {
		t.Fatalf("unexpected content %q", string(b))
	}

	rows, err := app.ManuscriptCLI.History(context.Background(), 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 1 || rows[0].Words != 2 || rows[0].Path != want {
		t.Fatalf("unexpected history: %+v", rows)
	}
	if _, err := os.Stat(filepath.Join(dir, "state", "history.db")); err != nil {
		t.Fatalf("expected history db under the work dir: %v", err)
	}
}

func TestHistoryDisabledByDefault(t *testing.T) {
	t.Parallel()
	app, err := bootstrap.New(bootstrap.Options{Settings: config.Default(), WorkDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.Close()
	if _, err := app.ManuscriptCLI.History(context.Background(), 0); !errors.Is(err, apperrors.ErrHistoryDisabled) {
		t.Fatalf("expected history disabled, got %v", err)
	}
}
