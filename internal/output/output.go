// Package output renders a resolved board as structured data (JSON or YAML)
// or as the single human-readable line scripts grep for.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rpi-model/internal/model"
	"github.com/shinji-kodama/rpi-model/internal/revision"
)

// Structured returns the machine-readable form of a record.
// The note is deliberately left out.
func Structured(rec model.ModelRecord) map[string]any {
	return map[string]any{
		"model":    rec.Model.String(),
		"revision": rec.Revision,
		"ram":      rec.RAMMB,
		"vendor":   rec.Vendor,
		"serial":   rec.Serial,
	}
}

// WriteJSON writes the structured form as 4-space indented JSON.
// encoding/json sorts map keys, so the output is reproducible.
func WriteJSON(w io.Writer, rec model.ModelRecord) error {
	data, err := json.MarshalIndent(Structured(rec), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteYAML writes the structured form as YAML. yaml.v3 also emits map keys
// in sorted order.
func WriteYAML(w io.Writer, rec model.ModelRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Structured(rec)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// Text returns the human-readable one-line form, e.g.
//
//	000d: Serial: abc123, Model B, Revision 2.0, RAM: 512 MB, Maker: Egoman
//
// A non-empty note is appended after a comma.
func Text(res revision.Resolution) string {
	rec := res.Record
	s := fmt.Sprintf("%s: Serial: %s, Model %s, Revision %s, RAM: %d MB, Maker: %s",
		res.Display, rec.Serial, rec.Model, rec.Revision, rec.RAMMB, rec.Vendor)
	if rec.Note != "" {
		s += ", " + rec.Note
	}
	return s
}
