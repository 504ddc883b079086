// list.go implements the "rpi-model list" command.
//
// The list command prints every revision code the tool recognizes, as a
// text table or, with --json/--yaml, as a structured array. Provisioning
// scripts use it to check whether a batch of boards is covered before
// rolling out.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/rpi-model/internal/revision"
)

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known revision codes",
		Long: `List every revision code in the built-in table with its board model,
PCB revision, RAM size and manufacturer.

Examples:
  rpi-model list
  rpi-model list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return printListResult(cmd.OutOrStdout(), revision.Known())
		},
	}
}

// listEntryJSON is the structured output for one table entry. Unlike the
// detect output it includes the note, since the table is documentation.
type listEntryJSON struct {
	Code     string `json:"code" yaml:"code"`
	Model    string `json:"model" yaml:"model"`
	Revision string `json:"revision" yaml:"revision"`
	RAM      int    `json:"ram" yaml:"ram"`
	Vendor   string `json:"vendor" yaml:"vendor"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
}

// printListResult outputs the table in text, JSON or YAML format,
// depending on the global flags.
func printListResult(w io.Writer, entries []revision.Entry) error {
	if !IsJSONOutput() && !IsYAMLOutput() {
		printListResultText(w, entries)
		return nil
	}

	// Use an empty slice instead of nil so JSON shows [] rather than null.
	rows := make([]listEntryJSON, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listEntryJSON{
			Code:     e.Key,
			Model:    e.Record.Model.String(),
			Revision: e.Record.Revision,
			RAM:      e.Record.RAMMB,
			Vendor:   e.Record.Vendor,
			Note:     e.Record.Note,
		})
	}

	if IsYAMLOutput() {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printListResultText outputs the table with aligned columns:
//
//	CODE  MODEL  REVISION  RAM     VENDOR  NOTE
//	2     B      1.0       256 MB  ?       -
//	d     B      2.0       512 MB  Egoman  -
func printListResultText(w io.Writer, entries []revision.Entry) {
	fmt.Fprintf(w, "%-6s %-6s %-9s %-8s %-8s %s\n",
		"CODE", "MODEL", "REVISION", "RAM", "VENDOR", "NOTE")

	for _, e := range entries {
		fmt.Fprintf(w, "%-6s %-6s %-9s %-8s %-8s %s\n",
			e.Key,
			e.Record.Model,
			e.Record.Revision,
			FormatRAM(e.Record.RAMMB),
			e.Record.Vendor,
			FormatNote(e.Record.Note),
		)
	}
}

// FormatRAM renders a RAM size in megabytes, e.g. 512 -> "512 MB".
func FormatRAM(mb int) string {
	return fmt.Sprintf("%d MB", mb)
}

// FormatNote returns the note, or "-" when it is empty so table columns
// stay aligned for awk-style consumers.
func FormatNote(note string) string {
	if note == "" {
		return "-"
	}
	return note
}
