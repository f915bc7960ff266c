package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"writingbuddy/internal/modules/manuscript/domain"
	manuscriptout "writingbuddy/internal/modules/manuscript/port/out"
)

type FileAppender struct{}

func NewFileAppender() manuscriptout.EntryAppender {
	return FileAppender{}
}

// Append creates path with mode 0644 when missing and otherwise appends.
func (FileAppender) Append(_ context.Context, path string, entry domain.Entry) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open output file: %w", err)
	}
	n, err := f.WriteString(entry.Render())
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close output file: %w", err)
	}
	return n, nil
}
