// Package config holds application constants and the startup configuration:
// credentials, endpoint and UI preferences loaded from a yaml file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/util"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingToken    = errors.New("missing GitHub token")
	ErrMissingUsername = errors.New("missing GitHub username")
)

// ValidationError lists every required setting that is absent.
type ValidationError struct {
	Missing []error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, err := range e.Missing {
		parts = append(parts, err.Error())
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match the individual sentinel errors.
func (e *ValidationError) Unwrap() []error { return e.Missing }

// Config is the startup configuration.
type Config struct {
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
	Endpoint string `yaml:"endpoint"`
	Theme    string `yaml:"theme"`
	DBPath   string `yaml:"db_path"`
	LogPath  string `yaml:"log_path"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns a config pointing at the public API and the XDG data dir.
func Default() Config {
	dataDir := util.DataDir(AppName)
	return Config{
		Endpoint: DefaultEndpoint,
		DBPath:   filepath.Join(dataDir, DBFileName),
		LogPath:  filepath.Join(dataDir, LogFileName),
	}
}

// DefaultPath is the config file consulted when none is given explicitly.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFile)
}

// Load reads path over the defaults. A missing file is only an error when
// the path was given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides credentials and endpoint from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvToken); ok && strings.TrimSpace(v) != "" {
		c.Token = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvUser); ok && strings.TrimSpace(v) != "" {
		c.Username = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		c.Endpoint = strings.TrimSpace(v)
	}
}

// Validate reports missing credentials as a *ValidationError.
func (c Config) Validate() error {
	var missing []error
	if strings.TrimSpace(c.Token) == "" {
		missing = append(missing, ErrMissingToken)
	}
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, ErrMissingUsername)
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
