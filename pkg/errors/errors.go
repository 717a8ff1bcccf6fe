// Package errors holds the sentinel errors shared by the configuration and CLI
// layers, plus helpers to wrap them with context. Codec errors live in the
// filemode package.
package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")

	// Setting errors.
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel     = fmt.Errorf("invalid log level")
	ErrInvalidOctalDigits  = fmt.Errorf("invalid octal digit count")
	ErrInvalidBoolValue    = fmt.Errorf("invalid boolean value")
	ErrUnknownConfigKey    = fmt.Errorf("unknown configuration key")

	// CLI errors.
	ErrInvalidVariable   = fmt.Errorf("invalid script variable")
	ErrVersionConstraint = fmt.Errorf("version constraint not satisfied")
)

// Valid values for enumerated settings.
var (
	ValidOutputFormats = []string{"text", "table", "json", "yaml"}
	ValidLogLevels     = []string{"debug", "info", "warn", "error"}
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: %v", ErrInvalidOutputFormat, format, ValidOutputFormats)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: %v", ErrInvalidLogLevel, level, ValidLogLevels)
}

// ErrInvalidOctalDigitsWithDetails reports an octal width outside [min, max].
func ErrInvalidOctalDigitsWithDetails(digits, minDigits, maxDigits int) error {
	return fmt.Errorf("%w: %d, must be between %d and %d", ErrInvalidOctalDigits, digits, minDigits, maxDigits)
}

// ErrUnknownConfigKeyWithName reports an unknown setting key.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
}

// ErrConfigFileExistsWithPath includes the existing file path.
func ErrConfigFileExistsWithPath(path string) error {
	return fmt.Errorf("%w: %s", ErrConfigFileExists, path)
}
