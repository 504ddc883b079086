// Package model defines the domain types and value objects for the
// rpi-model CLI.
//
// This package contains pure data structures with no external dependencies.
// A ModelRecord is built once per resolution from the static revision table
// and handed to the caller by value; nothing in the program mutates it
// afterwards.
//
// The package also defines the two domain error kinds (source unavailable,
// unknown revision), exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
