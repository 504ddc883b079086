// Package config loads the optional rpi-model configuration file.
//
// The file is JSONC (JSON with Comments), so provisioning images can ship an
// annotated config. github.com/tidwall/jsonc strips comments and trailing
// commas before the standard encoding/json parser sees the data.
//
// Example:
//
//	{
//	  // Read host info from a captured file instead of /proc/cpuinfo.
//	  "cpuinfoPath": "/var/lib/provision/cpuinfo",
//	  "format": "json",
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/rpi-model/internal/hostinfo"
	"github.com/shinji-kodama/rpi-model/internal/model"
)

// Format selects how the detect command prints its result.
type Format string

const (
	// FormatText is the single human-readable line.
	FormatText Format = "text"

	// FormatJSON is the structured form as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML is the structured form as YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the supported formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Config holds the settings that can be read from a config file.
// Command-line flags take precedence over every field.
type Config struct {
	// CPUInfoPath is the system info source to read.
	CPUInfoPath string `json:"cpuinfoPath,omitempty"`

	// Format is the default output format.
	Format Format `json:"format,omitempty"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		CPUInfoPath: hostinfo.DefaultPath,
		Format:      FormatText,
	}
}

// Load reads a config file, strips JSONC comments, and merges the result
// over Default().
//
// Returns a CLIError with ExitGeneralError if the file does not exist, so a
// mistyped --config path is not silently ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, model.WrapCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes JSONC config data and merges it over Default().
func Parse(data []byte) (Config, error) {
	var raw Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	if raw.CPUInfoPath != "" {
		cfg.CPUInfoPath = raw.CPUInfoPath
	}
	if raw.Format != "" {
		if !raw.Format.IsValid() {
			return Config{}, fmt.Errorf("invalid format %q in config file (valid: text, json, yaml)", raw.Format)
		}
		cfg.Format = raw.Format
	}
	return cfg, nil
}
