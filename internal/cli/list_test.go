// list_test.go contains tests for the list command and its
// formatting helpers.

package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

// TestFormatRAM verifies the unit suffix.
func TestFormatRAM(t *testing.T) {
	assert.Equal(t, "256 MB", FormatRAM(256))
	assert.Equal(t, "512 MB", FormatRAM(512))
}

// TestFormatNote verifies empty notes become a dash.
func TestFormatNote(t *testing.T) {
	assert.Equal(t, "-", FormatNote(""))
	assert.Equal(t, "Fuses mod and D14 removed", FormatNote("Fuses mod and D14 removed"))
}

// TestList_Text verifies the header and one row per table entry.
func TestList_Text(t *testing.T) {
	stdout, _, code := runCLI(t, "list")
	require.Equal(t, model.ExitSuccess, code)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 12, "header plus 11 revisions")
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Equal(t, "2      B      1.0       256 MB   ?        -", lines[1])
	assert.Contains(t, lines[2], "Fuses mod and D14 removed")
	assert.True(t, strings.HasPrefix(lines[11], "f "))
}

// TestList_JSON verifies the structured array.
func TestList_JSON(t *testing.T) {
	stdout, _, code := runCLI(t, "list", "--json")
	require.Equal(t, model.ExitSuccess, code)

	var rows []listEntryJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 11)
	assert.Equal(t, listEntryJSON{Code: "d", Model: "B", Revision: "2.0", RAM: 512, Vendor: "Egoman"}, rows[8])
	assert.Equal(t, "Fuses mod and D14 removed", rows[1].Note)
}

// TestList_YAML verifies the YAML form carries the same rows.
func TestList_YAML(t *testing.T) {
	stdout, _, code := runCLI(t, "list", "--yaml")
	require.Equal(t, model.ExitSuccess, code)
	assert.Contains(t, stdout, `code: "2"`)
	assert.Contains(t, stdout, "vendor: Qisda")
}

// TestList_RejectsArguments verifies list takes no positional arguments.
func TestList_RejectsArguments(t *testing.T) {
	_, stderr, code := runCLI(t, "list", "extra")
	assert.Equal(t, model.ExitGeneralError, code)
	assert.Contains(t, stderr, "Error:")
}
