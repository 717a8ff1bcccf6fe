package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/cperrin88/chmodcalc/pkg/errors"
)

// SetValue sets a configuration value by key and validates the result.
// Supported keys:
//   - output_format: string - text, table, json or yaml
//   - color_output: bool - Whether to use colored output
//   - log_level: string - debug, info, warn or error
//   - octal_digits: int - Zero padding of rendered octal modes
//   - decimal_input: bool - Treat numeric arguments as base 10
func (c *Config) SetValue(key, value string) error {
	updated := c.Settings

	switch key {
	case "output_format":
		updated.OutputFormat = value
	case "color_output":
		boolVal, err := parseBool(key, value)
		if err != nil {
			return err
		}
		updated.ColorOutput = boolVal
	case "log_level":
		updated.LogLevel = value
	case "octal_digits":
		digits, err := strconv.Atoi(value)
		if err != nil {
			return errors.ErrInvalidOctalDigitsWithDetails(0, MinOctalDigits, MaxOctalDigits)
		}
		updated.OctalDigits = digits
	case "decimal_input":
		boolVal, err := parseBool(key, value)
		if err != nil {
			return err
		}
		updated.DecimalInput = boolVal
	default:
		return errors.ErrUnknownConfigKeyWithName(key)
	}

	if err := validateSettings(updated); err != nil {
		return err
	}
	c.Settings = updated
	return nil
}

func parseBool(key, value string) (bool, error) {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w for %s: %s", errors.ErrInvalidBoolValue, key, value)
	}
	return boolVal, nil
}

// GetValue returns the value of a setting as a string.
func (c *Config) GetValue(key string) (string, error) {
	value, ok := c.ToMap()[key]
	if !ok {
		return "", errors.ErrUnknownConfigKeyWithName(key)
	}
	return value, nil
}

// ToMap flattens the settings into yaml key / string value pairs.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		switch fieldValue.Kind() {
		case reflect.Bool:
			result[yamlKey] = strconv.FormatBool(fieldValue.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			result[yamlKey] = strconv.FormatInt(fieldValue.Int(), 10)
		case reflect.String:
			result[yamlKey] = fieldValue.String()
		default:
			result[yamlKey] = fmt.Sprintf("%v", fieldValue.Interface())
		}
	}

	return result
}

// Keys returns the setting keys in sorted order.
func (c *Config) Keys() []string {
	m := c.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
