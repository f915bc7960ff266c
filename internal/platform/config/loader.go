package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "writingbuddy/internal/platform/errors"
)

const (
	AppName         = "writingbuddy"
	DefaultFileName = AppName + ".toml"
)

//go:embed default.toml
var defaultFile []byte

var extensions = []string{".toml", ".yaml", ".yml", ".json"}

// LoadOptions describes where to look for a config file.
type LoadOptions struct {
	// ConfigFile is an explicit path, with or without extension.
	ConfigFile string
	// Initialize creates a default config file when none is found.
	Initialize bool
	// WorkDir is searched before the user config dir. Defaults to ".".
	WorkDir string
	// UserConfigDir defaults to os.UserConfigDir.
	UserConfigDir func() (string, error)
}

// Loaded is the outcome of Load. Path is empty when built-in defaults are used.
type Loaded struct {
	Settings Settings
	Path     string
	Created  bool
}

// Load resolves, optionally creates, and decodes the config file.
func Load(opts LoadOptions) (Loaded, error) {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.UserConfigDir == nil {
		opts.UserConfigDir = os.UserConfigDir
	}

	if opts.ConfigFile != "" {
		if path, ok := find(opts.ConfigFile); ok {
			return loadFile(path, false)
		}
		if !opts.Initialize {
			return Loaded{}, fmt.Errorf("%s: %w", opts.ConfigFile, apperrors.ErrConfigNotFound)
		}
		path := opts.ConfigFile
		if filepath.Ext(path) == "" {
			path += ".toml"
		}
		if err := WriteDefault(path); err != nil {
			return Loaded{}, err
		}
		return loadFile(path, true)
	}

	local := filepath.Join(opts.WorkDir, AppName)
	if path, ok := find(local); ok {
		return loadFile(path, false)
	}
	if opts.Initialize {
		path := filepath.Join(opts.WorkDir, DefaultFileName)
		if err := WriteDefault(path); err != nil {
			return Loaded{}, err
		}
		return loadFile(path, true)
	}

	dir, err := opts.UserConfigDir()
	if err != nil {
		return Loaded{Settings: Default().Normalize()}, nil
	}
	global := filepath.Join(dir, AppName, AppName)
	if path, ok := find(global); ok {
		return loadFile(path, false)
	}
	path := filepath.Join(dir, AppName, DefaultFileName)
	if err := WriteDefault(path); err != nil {
		return Loaded{Settings: Default().Normalize()}, nil
	}
	return loadFile(path, true)
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create config file: %w", err)
	}
	if _, err := f.Write(defaultFile); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config file: %w", err)
	}
	return nil
}

// Decode parses data according to the extension of path on top of the
// built-in defaults.
func Decode(path string, data []byte) (Settings, error) {
	settings := Default()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &settings)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	case ".json":
		err = json.Unmarshal(data, &settings)
	default:
		return Settings{}, fmt.Errorf("config format %q: %w", filepath.Ext(path), apperrors.ErrInvalidInput)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("decode %s: %w", path, err)
	}
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return settings, nil
}

func loadFile(path string, created bool) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, fmt.Errorf("read config: %w", err)
	}
	settings, err := Decode(path, data)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Settings: settings, Path: path, Created: created}, nil
}

// find accepts a path with a known extension or a base name that is tried
// with every supported extension in order.
func find(base string) (string, bool) {
	if isKnownExt(filepath.Ext(base)) {
		if isFile(base) {
			return base, true
		}
		return "", false
	}
	for _, ext := range extensions {
		if isFile(base + ext) {
			return base + ext, true
		}
	}
	return "", false
}

func isKnownExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, known := range extensions {
		if ext == known {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
