package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cperrin88/chmodcalc/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, 5, cfg.Settings.OctalDigits)
	assert.True(t, cfg.Settings.ColorOutput)
	assert.False(t, cfg.Settings.DecimalInput)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `settings:
  output_format: table
  log_level: debug
  color_output: false
  octal_digits: 6`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "table", cfg.Settings.OutputFormat)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.False(t, cfg.Settings.ColorOutput)
	assert.Equal(t, 6, cfg.Settings.OctalDigits)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("settings:\n  decimal_input: true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Settings.DecimalInput)
	assert.True(t, cfg.Settings.ColorOutput)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Equal(t, 5, cfg.Settings.OctalDigits)
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)

	_, err = LoadConfigFromReader(strings.NewReader("settings: [not, a, map]"))
	assert.ErrorIs(t, err, errors.ErrConfigParse)

	_, err = LoadConfigFromReader(strings.NewReader("settings:\n  output_format: xml\n"))
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
	assert.Contains(t, err.Error(), "xml")
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "warn"
	cfg.Settings.OctalDigits = 4

	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "octal_digits: 4")

	_, err = os.Stat(configPath + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	assert.ErrorIs(t, cfg.SaveConfig(""), errors.ErrEmptyConfigPath)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{"valid", func(*Settings) {}, nil},
		{"invalid output format", func(s *Settings) { s.OutputFormat = "xml" }, errors.ErrInvalidOutputFormat},
		{"invalid log level", func(s *Settings) { s.LogLevel = "trace" }, errors.ErrInvalidLogLevel},
		{"uppercase log level", func(s *Settings) { s.LogLevel = "DEBUG" }, nil},
		{"too few digits", func(s *Settings) { s.OctalDigits = 0 }, errors.ErrInvalidOctalDigits},
		{"too many digits", func(s *Settings) { s.OctalDigits = 12 }, errors.ErrInvalidOctalDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg.Settings)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), errors.ErrConfigValidation)
}

func TestSetAndGetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("output_format", "json"))
	require.NoError(t, cfg.SetValue("color_output", "false"))
	require.NoError(t, cfg.SetValue("octal_digits", "7"))
	require.NoError(t, cfg.SetValue("decimal_input", "true"))

	value, err := cfg.GetValue("output_format")
	require.NoError(t, err)
	assert.Equal(t, "json", value)

	value, err = cfg.GetValue("octal_digits")
	require.NoError(t, err)
	assert.Equal(t, "7", value)

	value, err = cfg.GetValue("decimal_input")
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	assert.ErrorIs(t, cfg.SetValue("color_output", "maybe"), errors.ErrInvalidBoolValue)
	assert.ErrorIs(t, cfg.SetValue("octal_digits", "many"), errors.ErrInvalidOctalDigits)
	assert.ErrorIs(t, cfg.SetValue("octal_digits", "40"), errors.ErrInvalidOctalDigits)
	assert.ErrorIs(t, cfg.SetValue("output_format", "xml"), errors.ErrInvalidOutputFormat)
	assert.ErrorIs(t, cfg.SetValue("colour", "true"), errors.ErrUnknownConfigKey)

	// rejected values leave the config untouched
	assert.Equal(t, 7, cfg.Settings.OctalDigits)
	assert.Equal(t, "json", cfg.Settings.OutputFormat)

	_, err = cfg.GetValue("cache_dir")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)
}

func TestKeys(t *testing.T) {
	assert.Equal(t,
		[]string{"color_output", "decimal_input", "log_level", "octal_digits", "output_format"},
		DefaultConfig().Keys())
}

func TestGetDefaultConfigPath(t *testing.T) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		t.Skipf("no user config dir available: %v", err)
	}
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, "chmodcalc", filepath.Base(filepath.Dir(path)))
}
