// Package config holds the pj configuration: where to scan, what marks a
// project, and how deep to look.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	pjerrors "thoreinstein.com/pj/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	// ScanPaths are the root directories searched for projects, in order.
	ScanPaths []string `mapstructure:"scan_paths" toml:"scan_paths"`
	// ProjectMarkers are entry names whose presence marks a directory as a
	// project root (e.g. ".git").
	ProjectMarkers []string `mapstructure:"project_markers" toml:"project_markers"`
	// MaxDepth bounds the scan below each root. 0 checks the root only.
	MaxDepth int `mapstructure:"max_depth" toml:"max_depth"`
}

// Load loads the configuration from file and environment variables.
// Viper must already be initialized (see pkg/bootstrap).
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, pjerrors.NewConfigErrorWithCause("", "failed to unmarshal config", err)
	}

	// Expand paths
	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return pjerrors.NewConfigError("max_depth", "must be non-negative")
	}
	// Empty lists fall back to defaults rather than erroring; a file that
	// only overrides max_depth should still work.
	if len(c.ScanPaths) == 0 {
		c.ScanPaths = defaultScanPaths()
	}
	if len(c.ProjectMarkers) == 0 {
		c.ProjectMarkers = defaultProjectMarkers()
	}
	return nil
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		ScanPaths:      defaultScanPaths(),
		ProjectMarkers: defaultProjectMarkers(),
		MaxDepth:       defaultMaxDepth,
	}
}

const defaultMaxDepth = 5

func defaultScanPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return []string{filepath.Join(homeDir, "Projects")}
}

func defaultProjectMarkers() []string {
	return []string{".git", ".jj", ".hg", ".project"}
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("scan_paths", defaultScanPaths())
	viper.SetDefault("project_markers", defaultProjectMarkers())
	viper.SetDefault("max_depth", defaultMaxDepth)
}

// Dir returns the directory holding the config file (~/.config/pj).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", "pj"), nil
}

// FilePath returns the default config file path (~/.config/pj/config.toml).
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// WriteDefault writes the default configuration to the default config file
// path, creating directories as needed, and returns the written path.
// Used by 'pj --init-config'.
func WriteDefault() (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write config file")
	}

	return path, nil
}

// expandPaths expands ~ in every configured scan path.
func expandPaths(config *Config) error {
	var err error

	for i, path := range config.ScanPaths {
		config.ScanPaths[i], err = ExpandPath(path)
		if err != nil {
			return err
		}
	}

	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
