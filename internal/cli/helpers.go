package cli

import (
	"fmt"
	"strconv"

	"github.com/cperrin88/chmodcalc/internal/logger"
	"github.com/cperrin88/chmodcalc/pkg/config"
	"github.com/cperrin88/chmodcalc/pkg/filemode"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// getConfigPath returns the --config flag or the default location.
func getConfigPath() (string, error) {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath, nil
	}
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get default config path: %w", err)
	}
	return path, nil
}

// loadConfig loads the configuration file, applies the global flag
// overrides and initializes logging accordingly.
func loadConfig() (*config.Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logFormat := logger.FormatText
	if cfg.Settings.OutputFormat == "json" {
		logFormat = logger.FormatJSON
	}
	logger.InitLogger(cfg.Settings.LogLevel, logFormat)
	logger.Debug("Loaded configuration", logger.Fields{"path": configPath})

	return cfg, nil
}

// decodeInput decodes a command-line argument. Ten-character inputs that do
// not start with a digit are symbolic; anything else is a number, in base 8
// unless decimal is set.
func decodeInput(input string, decimal bool) (filemode.FileMode, error) {
	var (
		mode filemode.FileMode
		err  error
	)
	switch {
	case filemode.IsSymbolic(input):
		mode, err = filemode.ParseString(input)
	case decimal:
		n, parseErr := strconv.ParseInt(input, 10, 64)
		if parseErr != nil {
			return filemode.FileMode{}, fmt.Errorf("invalid decimal mode '%s': %w", input, parseErr)
		}
		mode, err = filemode.ParseNumber(n)
	default:
		mode, err = filemode.ParseOctal(filemode.OctalString(input))
	}
	if err != nil {
		logger.Error("Failed to decode mode", logger.Fields{"input": input, "error": err.Error()})
		return filemode.FileMode{}, err
	}

	logger.Debug("Decoded mode", logger.Fields{
		"input":    input,
		"symbolic": mode.String(),
		"decimal":  mode.Decimal(),
		"types":    typeNames(mode),
	})
	return mode, nil
}

// typeNames lists the file type flags of mode. Composite types also report
// the single-bit types they are built from.
func typeNames(mode filemode.FileMode) []string {
	var names []string
	for _, f := range mode.Special.Enabled() {
		if f.IsType() {
			names = append(names, f.String())
		}
	}
	return names
}
