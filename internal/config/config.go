// Package config resolves the task store path and runtime settings.
//
// Settings come from, in increasing priority: built-in defaults, a TOML
// config file, and command-line flags (applied by the dispatcher). The config
// file is ./taskcli.toml when present, or the file named by --config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"taskcli/internal/logging"
)

const (
	// AppName is the application name.
	AppName = "taskcli"

	// ProjectConfigFile is looked up in the working directory.
	ProjectConfigFile = AppName + ".toml"

	// DefaultFile is the task store, relative to the working directory.
	DefaultFile = "tasks.json"

	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultLockTimeout = 5 * time.Second
)

// Config holds settings for one invocation.
type Config struct {
	// File is the task store path.
	File string `toml:"file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is one of text, logfmt, json.
	LogFormat string `toml:"log_format"`

	// LockTimeout bounds the wait for the store lock, e.g. "2s".
	LockTimeout time.Duration `toml:"lock_timeout"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// Debug enables debug logging. Flag only.
	Debug bool `toml:"-"`

	// Source is the config file that was loaded, empty if none.
	Source string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:        DefaultFile,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		LockTimeout: DefaultLockTimeout,
	}
}

// Load builds a Config from defaults and a config file.
// If path is empty, ./taskcli.toml is used when it exists; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = ProjectConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := loadFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a TOML file over cfg.
// Unknown keys are rejected; a relative store path is resolved against the
// directory holding the config file.
func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if md.IsDefined("file") && cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(filepath.Dir(path), cfg.File)
	}
	if strings.TrimSpace(cfg.File) == "" {
		return errors.New("file must not be empty")
	}
	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if !logging.ValidFormat(cfg.LogFormat) {
		return fmt.Errorf("invalid log_format %q", cfg.LogFormat)
	}
	if cfg.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must not be negative, got %s", cfg.LockTimeout)
	}

	cfg.Source = path
	return nil
}

// EffectiveLogLevel returns the level to log at; Debug wins over LogLevel.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
