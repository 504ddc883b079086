package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/rpi-model/internal/config"
	"github.com/shinji-kodama/rpi-model/internal/hostinfo"
	"github.com/shinji-kodama/rpi-model/internal/model"
	"github.com/shinji-kodama/rpi-model/internal/output"
	"github.com/shinji-kodama/rpi-model/internal/revision"
)

// detectFlags holds the flag values for the root (detect) command.
type detectFlags struct {
	// revision resolves this code instead of reading host info.
	revision string

	// cpuinfoPath overrides the system info source.
	cpuinfoPath string

	// configPath is an optional JSONC config file.
	configPath string
}

func registerDetectFlags(cmd *cobra.Command, flags *detectFlags) {
	cmd.Flags().StringVar(&flags.revision, "revision", "",
		"Resolve this revision code instead of reading host info")
	cmd.Flags().StringVar(&flags.cpuinfoPath, "cpuinfo", hostinfo.DefaultPath,
		"Path to the system info source")
	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to a JSONC config file")
}

// runDetect resolves the board and prints it.
//
// Settings are merged as: explicit flag, then config file, then defaults.
func runDetect(cmd *cobra.Command, flags *detectFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		VerboseLog("loaded config", "path", flags.configPath)
	}

	format := cfg.Format
	switch {
	case IsJSONOutput():
		format = config.FormatJSON
	case IsYAMLOutput():
		format = config.FormatYAML
	}
	// Errors follow the same format as results.
	jsonOutput = format == config.FormatJSON

	var (
		res revision.Resolution
		err error
	)
	if cmd.Flags().Changed("revision") {
		code := strings.TrimSpace(flags.revision)
		VerboseLog("resolving revision from flag", "code", code)
		res, err = revision.ResolveFromCode(code)
	} else {
		path := cfg.CPUInfoPath
		if cmd.Flags().Changed("cpuinfo") {
			path = flags.cpuinfoPath
		}
		VerboseLog("reading system info", "path", path)
		res, err = revision.ResolveFromHostInfo(path)
	}
	if err != nil {
		return wrapResolveError(err)
	}

	if res.Host != nil {
		VerboseLog("host info", "hardware", res.Host.Hardware, "model", res.Host.Model)
		if dt := hostinfo.DeviceTreeModel(); dt != "" {
			VerboseLog("device tree", "model", dt)
		}
	}
	VerboseLog("resolved revision", "key", res.Key, "display", res.Display)

	return printDetectResult(cmd.OutOrStdout(), format, res)
}

// wrapResolveError attaches the exit code and a user-facing message to a
// resolution failure.
func wrapResolveError(err error) error {
	code := model.ExitCodeFor(err)
	switch code {
	case model.ExitSourceUnavailable:
		return model.WrapCLIError(code, "cannot read system info", err)
	case model.ExitUnknownRevision:
		return model.WrapCLIError(code, "unrecognized board revision; it is not in the revision table", err)
	default:
		return err
	}
}

// printDetectResult writes the resolution in the selected format.
func printDetectResult(w io.Writer, format config.Format, res revision.Resolution) error {
	switch format {
	case config.FormatJSON:
		return output.WriteJSON(w, res.Record)
	case config.FormatYAML:
		return output.WriteYAML(w, res.Record)
	default:
		_, err := fmt.Fprintln(w, output.Text(res))
		return err
	}
}
