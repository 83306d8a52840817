package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// IndexFileName is the default index file name under the user config dir.
const IndexFileName = "jumpy.db"

// IndexFileEnv overrides the index location (process env or .env file).
const IndexFileEnv = "JUMPY_INDEX_FILE"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the in-memory representation of <config dir>/jumpy/config.yaml.
type Config struct {
	IndexFile   string        `yaml:"index_file,omitempty"`
	Checked     bool          `yaml:"checked,omitempty"`
	Color       string        `yaml:"color,omitempty"`
	LockTimeout time.Duration `yaml:"lock_timeout,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Color:       ColorAuto,
		LockTimeout: 2 * time.Second,
	}
}

// JumpyDir returns the absolute path to <user config dir>/jumpy/.
func JumpyDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "jumpy"), nil
}

// ConfigPath returns the absolute path to config.yaml.
func ConfigPath() (string, error) {
	dir, err := JumpyDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultIndexPath returns <user config dir>/jumpy.db.
func DefaultIndexPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, IndexFileName), nil
}

// ExpandPath expands a bare ~ or a leading ~/ to the user's home directory.
// Other forms such as ~user are returned unchanged.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Load reads config.yaml. A missing file yields DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.IndexFile, err = ExpandPath(cfg.IndexFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", c.Color)
	}
	if c.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must not be negative")
	}
	return nil
}

// ResolveIndexPath picks the index file location. An explicit flag wins, then
// JUMPY_INDEX_FILE (environment, then .env), then index_file from the config,
// then DefaultIndexPath.
func ResolveIndexPath(flag string, cfg *Config) (string, error) {
	if flag != "" {
		return ExpandPath(flag)
	}
	v, err := GetConfigValue(IndexFileEnv)
	if err != nil {
		return "", err
	}
	if v != "" {
		return ExpandPath(v)
	}
	if cfg != nil && cfg.IndexFile != "" {
		return cfg.IndexFile, nil
	}
	return DefaultIndexPath()
}
