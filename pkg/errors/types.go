// Package errors provides typed errors for the pj project.
//
// This package defines domain-specific error types for the subsystems
// (config, discovery, matching, selection). All error types implement the
// standard error interface and support errors.Is() and errors.As() from the
// standard library and cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// ScanError represents a failure affecting an entire discovery run.
// Per-directory failures are swallowed inside the scanner and never
// surface as a ScanError.
type ScanError struct {
	Root    string // Scan root involved, if any
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Root != "" {
		return fmt.Sprintf("scan of %s failed: %s", e.Root, e.Message)
	}
	return "scan failed: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewScanError creates a new ScanError.
func NewScanError(root, message string) *ScanError {
	return &ScanError{Root: root, Message: message}
}

// NoMatchError indicates that a pattern matched no discovered project.
type NoMatchError struct {
	Pattern string
}

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no project matches pattern %q", e.Pattern)
}

// NewNoMatchError creates a new NoMatchError.
func NewNoMatchError(pattern string) *NoMatchError {
	return &NoMatchError{Pattern: pattern}
}

// Sentinel errors for the terminal selection outcomes that carry no
// additional structure.
var (
	// ErrNoProjects is returned when discovery finds nothing under the
	// configured scan paths.
	ErrNoProjects = errors.New("no projects found in configured scan paths")

	// ErrCancelled is returned when the user cancels the interactive picker.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNoPreviousDir is returned when the bounce pattern is used but no
	// previous directory has been recorded (or the record is unreadable).
	ErrNoPreviousDir = errors.New("no previous directory recorded")
)

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsScanError checks if an error or any error in its chain is a ScanError.
func IsScanError(err error) bool {
	var scanErr *ScanError
	return errors.As(err, &scanErr)
}

// IsNoMatchError checks if an error or any error in its chain is a NoMatchError.
func IsNoMatchError(err error) bool {
	var nmErr *NoMatchError
	return errors.As(err, &nmErr)
}

// Process exit codes. The shell wrapper treats anything non-zero as "do not
// change directory"; cancellation keeps fzf's conventional 130 so it stays
// distinguishable from a failed lookup.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitCancelled = 130
)

// ExitCode maps an error to the process exit code for the shell contract.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrCancelled) {
		return ExitCancelled
	}
	return ExitFailure
}

// Re-export commonly used functions from cockroachdb/errors for convenience.
// This allows consumers to use pjerrors.Wrap() instead of importing two packages.
var (
	// New creates a new error with the given message.
	New = errors.New

	// Newf creates a new error with formatted message.
	Newf = errors.Newf

	// Wrap wraps an error with additional context.
	Wrap = errors.Wrap

	// Wrapf wraps an error with formatted additional context.
	Wrapf = errors.Wrapf

	// Is reports whether any error in err's chain matches target.
	Is = errors.Is

	// As finds the first error in err's chain that matches target.
	As = errors.As

	// Cause returns the root cause of an error.
	Cause = errors.Cause
)
