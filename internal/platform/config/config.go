package config

import (
	"fmt"
	"strings"

	apperrors "writingbuddy/internal/platform/errors"
)

// Settings mirrors the keys accepted in a writingbuddy config file. Durations
// are whole seconds; a goal or timeout of zero means unset.
type Settings struct {
	TitleFormat      string `toml:"title_format" yaml:"title_format" json:"title_format"`
	FileFormat       string `toml:"file_format" yaml:"file_format" json:"file_format"`
	BackspaceActive  bool   `toml:"backspace_active" yaml:"backspace_active" json:"backspace_active"`
	TimeGoal         int    `toml:"time_goal" yaml:"time_goal" json:"time_goal"`
	WordGoal         int    `toml:"word_goal" yaml:"word_goal" json:"word_goal"`
	StrictMode       bool   `toml:"strict_mode" yaml:"strict_mode" json:"strict_mode"`
	KeystrokeTimeout int    `toml:"keystroke_timeout" yaml:"keystroke_timeout" json:"keystroke_timeout"`
	Language         string `toml:"language" yaml:"language" json:"language"`
	LogFile          string `toml:"log_file" yaml:"log_file" json:"log_file"`
	LogLevel         string `toml:"log_level" yaml:"log_level" json:"log_level"`
	HistoryDB        string `toml:"history_db" yaml:"history_db" json:"history_db"`
}

const (
	DefaultTitleFormat = "## %Y-%m-%d"
	DefaultFileFormat  = "%Y-%m.md"
	DefaultLogLevel    = "info"
)

func Default() Settings {
	return Settings{
		TitleFormat:     DefaultTitleFormat,
		FileFormat:      DefaultFileFormat,
		BackspaceActive: true,
		StrictMode:      true,
		LogLevel:        DefaultLogLevel,
	}
}

// Normalize maps non-positive goals and timeouts to zero and fills empty
// formats with their defaults.
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
	if strings.TrimSpace(s.FileFormat) == "" {
		s.FileFormat = DefaultFileFormat
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}

func (s Settings) Validate() error {
	switch s.LogLevel {
	case "trace", "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("log_level %q: %w", s.LogLevel, apperrors.ErrInvalidInput)
	}
	return nil
}
