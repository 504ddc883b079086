package model

import (
	"errors"
	"fmt"
)

// BoardModel is the single-letter board model identifier printed on the
// board silkscreen ("A" or "B").
type BoardModel string

const (
	// ModelA is the cheaper variant without Ethernet and with one USB port.
	ModelA BoardModel = "A"

	// ModelB has Ethernet and two USB ports.
	ModelB BoardModel = "B"
)

// String returns the string representation of BoardModel.
func (m BoardModel) String() string {
	return string(m)
}

// IsValid checks whether the BoardModel value is one of the known models.
func (m BoardModel) IsValid() bool {
	switch m {
	case ModelA, ModelB:
		return true
	default:
		return false
	}
}

// ModelRecord describes one hardware variant resolved from a revision code.
//
// Records are value types. Resolution functions return a fresh copy, so the
// caller owns it exclusively and the static table can never be modified
// through a returned record.
type ModelRecord struct {
	// Model is the board model letter.
	Model BoardModel `json:"model" yaml:"model"`

	// Revision is the PCB revision string (e.g. "1.0", "2.0").
	Revision string `json:"revision" yaml:"revision"`

	// RAMMB is the amount of installed RAM in megabytes.
	RAMMB int `json:"ram" yaml:"ram"`

	// Vendor is the manufacturer name, or "?" when unknown.
	Vendor string `json:"vendor" yaml:"vendor"`

	// Note holds free-text remarks about the batch (e.g. board mods).
	// Empty for most revisions.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`

	// Serial is the board serial number as reported by the host.
	// Empty when the record was resolved from a bare revision code.
	Serial string `json:"serial" yaml:"serial"`
}

// Validate checks that a table record is well formed.
func (r ModelRecord) Validate() error {
	if !r.Model.IsValid() {
		return fmt.Errorf("invalid board model %q (valid: A, B)", r.Model)
	}
	if r.Revision == "" {
		return fmt.Errorf("board revision must not be empty")
	}
	if r.RAMMB <= 0 {
		return fmt.Errorf("ram size %d must be positive", r.RAMMB)
	}
	if r.Vendor == "" {
		return fmt.Errorf("vendor must not be empty (use \"?\" when unknown)")
	}
	return nil
}

// WithSerial returns a copy of the record with Serial set.
func (r ModelRecord) WithSerial(serial string) ModelRecord {
	r.Serial = serial
	return r
}

// ErrSourceUnavailable is returned when the host system information source
// cannot be read or carries no parsable Revision field. Callers match it with
// errors.Is; the wrapping error carries the path and cause.
var ErrSourceUnavailable = errors.New("system info source unavailable")

// UnknownRevisionError reports a normalized revision code that has no entry
// in the revision table.
type UnknownRevisionError struct {
	// Key is the normalized code that was looked up.
	Key string
}

// Error satisfies the error interface.
func (e *UnknownRevisionError) Error() string {
	return fmt.Sprintf("unknown revision %q", e.Key)
}

// ExitCode defines standard CLI exit codes.
// These codes allow provisioning scripts to tell a missing info source
// apart from a board that is simply not in the table.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, including
	// usage errors such as unexpected arguments.
	ExitGeneralError ExitCode = 1

	// ExitSourceUnavailable indicates the system info source could not be
	// read or did not contain a Revision field.
	ExitSourceUnavailable ExitCode = 2

	// ExitUnknownRevision indicates the revision code is not in the table.
	ExitUnknownRevision ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ExitCodeFor maps a domain error to the exit code the CLI should use.
// Errors that are neither kind map to ExitGeneralError.
func ExitCodeFor(err error) ExitCode {
	var unknown *UnknownRevisionError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSourceUnavailable):
		return ExitSourceUnavailable
	case errors.As(err, &unknown):
		return ExitUnknownRevision
	default:
		return ExitGeneralError
	}
}
