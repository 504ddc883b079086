package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

// writeConfig writes content to a config file inside a fresh temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rpi-model.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestDefault verifies the built-in settings.
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/proc/cpuinfo", cfg.CPUInfoPath)
	assert.Equal(t, FormatText, cfg.Format)
}

// TestLoad_JSONC verifies comments and trailing commas are accepted.
func TestLoad_JSONC(t *testing.T) {
	path := writeConfig(t, `{
  // captured on the provisioning host
  "cpuinfoPath": "/tmp/cpuinfo", /* inline */
  "format": "yaml",
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cpuinfo", cfg.CPUInfoPath)
	assert.Equal(t, FormatYAML, cfg.Format)
}

// TestLoad_PartialFile verifies unset fields keep their defaults.
func TestLoad_PartialFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"format": "json"}`))
	require.NoError(t, err)
	assert.Equal(t, "/proc/cpuinfo", cfg.CPUInfoPath)
	assert.Equal(t, FormatJSON, cfg.Format)
}

// TestLoad_NotFound verifies a missing file surfaces as a CLIError.
func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// TestParse_Errors covers malformed input and an unknown format.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", `{"format": `, "failed to parse"},
		{"unknown format", `{"format": "xml"}`, "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestFormat_IsValid checks that only supported formats pass.
func TestFormat_IsValid(t *testing.T) {
	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatYAML.IsValid())
	assert.False(t, Format("xml").IsValid())
	assert.Equal(t, "json", FormatJSON.String())
}
