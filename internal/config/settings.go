package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds machine-wide tool settings, separate from the per-project
// hooks document. Read from ~/.config/precommit/config.toml.
type Settings struct {
	// CacheDir overrides where provisioning markers live.
	CacheDir string `toml:"cache_dir"`
	// Jobs is the default hook-level parallelism (0 = GOMAXPROCS).
	Jobs int `toml:"jobs"`
	// ExternalTimeout bounds external hooks without their own timeout,
	// e.g. "5m". Empty means no limit.
	ExternalTimeout string `toml:"external_timeout"`
}

func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "precommit", "config.toml"), nil
}

// DefaultCacheDir returns the provisioning cache location used when
// settings don't override it.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "precommit")
	}
	return filepath.Join(dir, "precommit")
}

// LoadSettings reads the tool settings file. A missing file yields
// defaults without error; an invalid one is an error.
func LoadSettings() (Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return defaultSettings(), nil
	}
	return loadSettingsFrom(path)
}

func loadSettingsFrom(path string) (Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return defaultSettings(), fmt.Errorf("parse settings: %w", err)
	}

	if err := validatePath(s.CacheDir, "cache_dir"); err != nil {
		return defaultSettings(), err
	}
	if s.CacheDir != "" {
		expanded, err := expandPath(s.CacheDir)
		if err != nil {
			return defaultSettings(), fmt.Errorf("expand cache_dir: %w", err)
		}
		s.CacheDir = expanded
	} else {
		s.CacheDir = DefaultCacheDir()
	}

	if s.Jobs < 0 {
		return defaultSettings(), fmt.Errorf("invalid jobs %d: must not be negative", s.Jobs)
	}

	if s.ExternalTimeout != "" {
		if _, err := time.ParseDuration(s.ExternalTimeout); err != nil {
			return defaultSettings(), fmt.Errorf("invalid external_timeout: %w", err)
		}
	}

	return s, nil
}

func defaultSettings() Settings {
	return Settings{CacheDir: DefaultCacheDir()}
}

// Timeout returns the parsed external timeout, or zero when unset.
func (s Settings) Timeout() time.Duration {
	if s.ExternalTimeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(s.ExternalTimeout)
	return d
}

// validatePath checks that the path is absolute or starts with ~.
// Returns an error for relative paths (like "." or "..").
func validatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
