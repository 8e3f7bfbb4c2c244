// Package config handles loading and saving user configuration for lipi.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/lipi/internal/session"
	"github.com/f3rmion/lipi/internal/translit"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for lipi.
type Config struct {
	Endpoint    string        `yaml:"endpoint"`
	InputTool   string        `yaml:"input_tool"`   // itc parameter, e.g. "ne-t-i0-und"
	Candidates  int           `yaml:"candidates"`   // num parameter; only the first is shown
	Timeout     time.Duration `yaml:"timeout"`      // 0 disables the request timeout
	Debounce    time.Duration `yaml:"debounce"`     // 0 converts on every keystroke
	StalePolicy string        `yaml:"stale_policy"` // "apply" or "discard"
	LogFile     string        `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Endpoint:    translit.DefaultEndpoint,
		InputTool:   translit.DefaultInputTool,
		Candidates:  translit.DefaultCandidates,
		StalePolicy: string(session.ApplyInOrder),
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that the values can drive a session.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint)
	}
	if c.InputTool == "" {
		return errors.New("input_tool must not be empty")
	}
	if c.Candidates < 1 {
		return fmt.Errorf("candidates must be at least 1, got %d", c.Candidates)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	if _, err := session.ParseStalePolicy(c.StalePolicy); err != nil {
		return err
	}
	return nil
}

// Policy returns the parsed stale-result policy. It assumes Validate passed.
func (c *Config) Policy() session.StalePolicy {
	p, _ := session.ParseStalePolicy(c.StalePolicy)
	return p
}

// ClientOptions returns the transliteration client settings.
func (c *Config) ClientOptions() translit.Options {
	return translit.Options{
		Endpoint:   c.Endpoint,
		InputTool:  c.InputTool,
		Candidates: c.Candidates,
		Timeout:    c.Timeout,
	}
}

// LogPath returns the log file path, defaulting to lipi.log in dir.
func (c *Config) LogPath(dir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(dir, "lipi.log")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lipi"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
