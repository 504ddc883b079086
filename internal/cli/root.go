// Package cli implements the cobra-based CLI commands for rpi-model.
//
// The root command itself identifies the board (see detect.go); the list
// subcommand prints the revision table. This file defines the root command,
// global flags, logging and error/exit-code handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/rpi-model/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command, and are
// reset to their defaults every time NewRootCommand runs.
var (
	// jsonOutput selects the structured JSON form for results and errors.
	jsonOutput bool

	// yamlOutput selects the structured YAML form for results.
	yamlOutput bool

	// verbose enables debug logging on stderr.
	verbose bool
)

// logger receives VerboseLog output. It discards everything until
// configureLogging installs a stderr handler for --verbose.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Running the root command with no arguments identifies the board this
// process runs on. Positional arguments are rejected rather than ignored,
// so a typo such as "rpi-model json" fails loudly instead of printing text.
func NewRootCommand() *cobra.Command {
	flags := &detectFlags{}

	rootCmd := &cobra.Command{
		Use:   "rpi-model",
		Short: "Identify a Raspberry Pi board from its revision code",
		Long: `rpi-model reads the board revision code from /proc/cpuinfo (or takes it
from --revision) and prints the board model, PCB revision, RAM size and
manufacturer.

Examples:
  rpi-model
  rpi-model --json
  rpi-model --revision 000d
  rpi-model list`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Run formats them as text or JSON based on --json.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr())
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	registerDetectFlags(rootCmd, flags)

	rootCmd.AddCommand(NewListCommand())

	return rootCmd
}

// Execute runs the root command and exits the process with the matching
// exit code on failure. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes the command tree, prints any error to the command's stderr
// and returns the exit code. CLIError types carry their own exit codes;
// other errors (including usage errors) map to ExitGeneralError.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	w := rootCmd.ErrOrStderr()
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError(w, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		var unknown *model.UnknownRevisionError
		if errors.As(underlying, &unknown) {
			errObj["revision"] = unknown.Key
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// configureLogging points the logger at w when --verbose is set.
func configureLogging(w io.Writer) {
	if !verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// VerboseLog writes a debug line with key/value attributes when verbose mode
// is enabled.
func VerboseLog(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsYAMLOutput returns whether the --yaml flag is set.
func IsYAMLOutput() bool {
	return yamlOutput
}
