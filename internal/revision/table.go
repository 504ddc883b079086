package revision

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

//go:embed data/revisions.yaml
var tableYAML []byte

// tableFile is the on-disk shape of data/revisions.yaml.
type tableFile struct {
	Revisions map[string]model.ModelRecord `yaml:"revisions"`
}

// table is decoded from the embedded document at package init and never
// written again.
var table = mustDecodeTable(tableYAML)

// Entry pairs a normalized revision key with its record template.
type Entry struct {
	Key    string            `json:"key"`
	Record model.ModelRecord `json:"record"`
}

// Lookup returns a copy of the record stored under the normalized key.
func Lookup(key string) (model.ModelRecord, bool) {
	rec, ok := table[key]
	return rec, ok
}

// Known returns every table entry, sorted by key.
func Known() []Entry {
	entries := make([]Entry, 0, len(table))
	for k, rec := range table {
		entries = append(entries, Entry{Key: k, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// decodeTable parses and validates a revision table document.
//
// Every key must already be in normalized form, otherwise it could never be
// reached by a lookup, and no template may carry a serial number.
func decodeTable(data []byte) (map[string]model.ModelRecord, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing revision table: %w", err)
	}
	if len(f.Revisions) == 0 {
		return nil, fmt.Errorf("revision table is empty")
	}

	for key, rec := range f.Revisions {
		if key == "" || NormalizeKey(key) != key {
			return nil, fmt.Errorf("revision table key %q is not normalized", key)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("revision table entry %q: %w", key, err)
		}
		if rec.Serial != "" {
			return nil, fmt.Errorf("revision table entry %q must not set a serial", key)
		}
	}
	return f.Revisions, nil
}

func mustDecodeTable(data []byte) map[string]model.ModelRecord {
	t, err := decodeTable(data)
	if err != nil {
		panic(err)
	}
	return t
}
