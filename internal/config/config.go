// Package config loads the optional topdf YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/starsunsurpass/topdf/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// DefaultName is the config name searched when no --config flag is given.
const DefaultName = "topdf"

// appDirName is the subdirectory of the user config dir searched for
// named configs.
const appDirName = "topdf"

// Config holds all configuration for batch conversion.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Convert ConvertConfig `yaml:"convert"`
	Log     LogConfig     `yaml:"log"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to each input)
}

// FontsConfig defines font probing options.
type FontsConfig struct {
	Paths []string `yaml:"paths"` // Probe list override, tried in order
}

// ConvertConfig defines conversion options.
type ConvertConfig struct {
	Highlight bool `yaml:"highlight"` // Color source files and fenced code blocks
}

// LogConfig defines logging options.
type LogConfig struct {
	Verbose bool   `yaml:"verbose"` // Emit debug-level messages
	Dir     string `yaml:"dir"`     // When set, duplicate messages into <dir>/topdf.log
}

// DefaultConfig returns a neutral configuration: output next to each
// input, built-in font probe list, highlighting off.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// LoadDefault resolves DefaultName in the standard locations. A missing
// file is not an error: the defaults are returned instead.
func LoadDefault() (*Config, error) {
	cfg, err := LoadConfig(DefaultName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/topdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
