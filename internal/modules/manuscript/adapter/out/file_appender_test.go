package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"writingbuddy/internal/modules/manuscript/adapter/out"
	"writingbuddy/internal/modules/manuscript/domain"
)

func TestFileAppenderCreatesThenAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "2026-03.md")
	appender := out.NewFileAppender()

	n, err := appender.Append(context.Background(), path, domain.Entry{Title: "## one", Body: "first"})
	if err != nil {
		t.Fatalf("first append: %v", err)
	}
	if n != len("## one\nfirst\n\n") {
		t.Fatalf("unexpected byte count %d", n)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o600 != 0o600 {
		t.Fatalf("expected owner read/write, got %v", info.Mode().Perm())
	}

	if _, err := appender.Append(context.Background(), path, domain.Entry{Body: "second"}); err != nil {
		t.Fatalf("second append: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if want := "## one\nfirst\n\nsecond\n\n"; string(b) != want {
		t.Fatalf("expected %q, got %q", want, string(b))
	}
}

func TestFileAppenderCreatesParentDirs(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "2026", "03.md")
	if _, err := out.NewFileAppender().Append(context.Background(), path, domain.Entry{Body: "x"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file: %v", err)
	}
}

func TestFileAppenderFailsOnDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if _, err := out.NewFileAppender().Append(context.Background(), dir, domain.Entry{Body: "x"}); err == nil {
		t.Fatalf("expected error when target is a directory")
	}
}
