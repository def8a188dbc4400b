package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPath names a configuration file that takes precedence over the search
// locations, after the compile-time override.
const EnvPath = "FRACTALEXPLORER_CONFIG"

// Loader finds and reads the configuration file.
type Loader struct {
	Version      string // "dev" enables ./.fractalexplorerrc
	OverridePath string // set at link time
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load reads the first configuration file found, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path of the configuration file to read, or ""
// when none exists.
func (l *Loader) GetConfigPath() string {
	var candidates []string
	if l.OverridePath != "" {
		candidates = append(candidates, l.OverridePath)
	}
	if p := os.Getenv(EnvPath); p != "" {
		candidates = append(candidates, p)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(wd, ".fractalexplorerrc"))
		}
	}
	if p := DefaultPath(); p != "" {
		candidates = append(candidates, p)
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// DefaultPath is where a new configuration file is written:
// $XDG_CONFIG_HOME/fractalexplorer/config.rc, falling back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "fractalexplorer", "config.rc")
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
