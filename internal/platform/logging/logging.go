package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"
)

// Options selects the log destination. The terminal belongs to the TUI, so
// logs only ever go to a file or nowhere.
type Options struct {
	Path  string
	Level string
}

// New returns a logger and a close function. An empty Path or the level
// "off" yields a null logger.
func New(opts Options) (hclog.Logger, func() error, error) {
	level := hclog.LevelFromString(opts.Level)
	if opts.Path == "" || level == hclog.Off {
		return hclog.NewNullLogger(), func() error { return nil }, nil
	}
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, level), f.Close, nil
}

func NewWithWriter(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "writingbuddy",
		Level:  level,
		Output: w,
	})
}
