// Package config provides configuration management for chmodcalc. Settings
// are stored as YAML in the user's config directory. A missing file yields
// the defaults, and command-line flags override whatever the file says.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cperrin88/chmodcalc/pkg/errors"
	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Output settings
	OutputFormat string `yaml:"output_format"` // text, table, json, yaml
	ColorOutput  bool   `yaml:"color_output"`
	LogLevel     string `yaml:"log_level"` // debug, info, warn, error

	// Codec settings
	OctalDigits  int  `yaml:"octal_digits"`  // zero padding of rendered octal modes
	DecimalInput bool `yaml:"decimal_input"` // treat numeric arguments as base 10
}

// Default configuration values.
const (
	// DefaultOutputFormat is the output format used when none is configured.
	DefaultOutputFormat = "text"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// MinOctalDigits and MaxOctalDigits bound octal_digits. Eleven digits hold
	// any 32-bit mode.
	MinOctalDigits = 1
	MaxOctalDigits = 11

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	// configFileMode is the permission of the saved config file.
	configFileMode = 0o644
	configDirMode  = 0o755
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			OutputFormat: DefaultOutputFormat,
			ColorOutput:  true,
			LogLevel:     DefaultLogLevel,
			OctalDigits:  filemode.OctalDigits,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file is not an error
// and yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return config, nil
}

// applyDefaults fills settings that were explicitly blanked in the file.
func (c *Config) applyDefaults() {
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = DefaultOutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = DefaultLogLevel
	}
	if c.Settings.OctalDigits == 0 {
		c.Settings.OctalDigits = filemode.OctalDigits
	}
}

// SaveConfig writes the configuration to path through a temporary file and an
// atomic rename.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), configDirMode); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, configFileMode)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	return validateSettings(c.Settings)
}

func validateSettings(s Settings) error {
	if !slices.Contains(errors.ValidOutputFormats, s.OutputFormat) {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	if !slices.Contains(errors.ValidLogLevels, strings.ToLower(s.LogLevel)) {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	if s.OctalDigits < MinOctalDigits || s.OctalDigits > MaxOctalDigits {
		return errors.ErrInvalidOctalDigitsWithDetails(s.OctalDigits, MinOctalDigits, MaxOctalDigits)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "chmodcalc", "config.yaml"), nil
}
