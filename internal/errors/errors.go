// Package errors defines the stable error code system for sniperctl.
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	// Precondition error codes
	EToolchainNotInstalled Code = "E_TOOLCHAIN_NOT_INSTALLED" // cargo not on PATH or --version failed
	EConfigMissing         Code = "E_CONFIG_MISSING"          // .env absent; template materialized

	// Build error codes
	EBuildFailed Code = "E_BUILD_FAILED" // cargo build non-zero exit
	ECleanFailed Code = "E_CLEAN_FAILED" // cargo clean non-zero exit

	// Launch error codes
	EArtifactMissing Code = "E_ARTIFACT_MISSING" // expected binary absent for a start-only command
	ELaunchFailed    Code = "E_LAUNCH_FAILED"    // launched artifact exited non-zero
)

// CtlError is the standard error type for sniperctl errors.
type CtlError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *CtlError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *CtlError) Unwrap() error {
	return e.Cause
}

// ExitCodeError wraps an error with an explicit process exit code.
type ExitCodeError struct {
	Err  error
	Code int
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

func (e *ExitCodeError) ExitCode() int {
	return e.Code
}

// WithExitCode wraps err with a specific process exit code.
func WithExitCode(err error, code int) error {
	return &ExitCodeError{Err: err, Code: code}
}

// New creates a new CtlError with the given code and message.
func New(code Code, msg string) error {
	return &CtlError{Code: code, Msg: msg}
}

// NewWithDetails creates a new CtlError with code, message, and details.
// Details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &CtlError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new CtlError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &CtlError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new CtlError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &CtlError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a CtlError.
func GetCode(err error) Code {
	var ce *CtlError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// AsCtlError returns (*CtlError, true) if err is or wraps a CtlError.
func AsCtlError(err error) (*CtlError, bool) {
	var ce *CtlError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, the explicit code if one was attached,
// 2 for E_USAGE, and 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}
