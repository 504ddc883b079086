package revision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

// TestKnown_Contents pins the embedded table so an edit to the YAML file
// cannot silently change what a code resolves to.
func TestKnown_Contents(t *testing.T) {
	want := []Entry{
		{"2", model.ModelRecord{Model: "B", Revision: "1.0", RAMMB: 256, Vendor: "?"}},
		{"3", model.ModelRecord{Model: "B", Revision: "1.0", RAMMB: 256, Vendor: "?", Note: "Fuses mod and D14 removed"}},
		{"4", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 256, Vendor: "Sony"}},
		{"5", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 256, Vendor: "Qisda"}},
		{"6", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 256, Vendor: "Egoman"}},
		{"7", model.ModelRecord{Model: "A", Revision: "2.0", RAMMB: 256, Vendor: "Egoman"}},
		{"8", model.ModelRecord{Model: "A", Revision: "2.0", RAMMB: 256, Vendor: "Sony"}},
		{"9", model.ModelRecord{Model: "A", Revision: "2.0", RAMMB: 256, Vendor: "Qisda"}},
		{"d", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 512, Vendor: "Egoman"}},
		{"e", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 512, Vendor: "Sony"}},
		{"f", model.ModelRecord{Model: "B", Revision: "2.0", RAMMB: 512, Vendor: "Qisda"}},
	}
	assert.Equal(t, want, Known())
}

// TestLookup_ReturnsCopy verifies callers cannot modify the table through a
// returned record.
func TestLookup_ReturnsCopy(t *testing.T) {
	rec, ok := Lookup("d")
	require.True(t, ok)
	rec.Vendor = "changed"

	again, ok := Lookup("d")
	require.True(t, ok)
	assert.Equal(t, "Egoman", again.Vendor)
}

// TestLookup_Missing verifies there is no default entry.
func TestLookup_Missing(t *testing.T) {
	for _, key := range []string{"", "0", "1", "a", "ffff", "000d"} {
		_, ok := Lookup(key)
		assert.False(t, ok, "key %q should not be in the table", key)
	}
}

// TestDecodeTable_Errors covers the validation applied to the embedded table.
func TestDecodeTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			doc:     "revisions: [",
			wantErr: "parsing revision table",
		},
		{
			name:    "empty",
			doc:     "revisions: {}",
			wantErr: "empty",
		},
		{
			name:    "key not normalized",
			doc:     `revisions: {"000d": {model: B, revision: "2.0", ram: 512, vendor: Egoman}}`,
			wantErr: "not normalized",
		},
		{
			name:    "invalid record",
			doc:     `revisions: {"d": {model: Q, revision: "2.0", ram: 512, vendor: Egoman}}`,
			wantErr: "invalid board model",
		},
		{
			name:    "serial in template",
			doc:     `revisions: {"d": {model: B, revision: "2.0", ram: 512, vendor: Egoman, serial: x}}`,
			wantErr: "must not set a serial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTable([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestMustDecodeTable_Panics verifies a broken document aborts startup.
func TestMustDecodeTable_Panics(t *testing.T) {
	assert.Panics(t, func() { mustDecodeTable([]byte("revisions: {}")) })
}
