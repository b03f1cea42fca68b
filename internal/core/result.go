package core

import (
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
)

// StageResult is the uniform outcome of one stage.
type StageResult struct {
	Success  bool
	Message  string
	ExitCode int

	// Code classifies a failure; empty on success.
	Code errors.Code
	// Details carries context keys for error output (op, artifact, hint, ...).
	Details map[string]string
}

// Pass returns a successful result.
func Pass(msg string) StageResult {
	return StageResult{Success: true, Message: msg}
}

// Fail returns a failed result. A zero exit code is replaced by 1 so a
// failure can never exit cleanly.
func Fail(code errors.Code, exitCode int, msg string, details map[string]string) StageResult {
	if exitCode == 0 {
		exitCode = 1
	}
	return StageResult{
		Success:  false,
		Message:  msg,
		ExitCode: exitCode,
		Code:     code,
		Details:  details,
	}
}

// Err converts a failed result into an error carrying its code, details and
// exit code. Returns nil on success.
func (r StageResult) Err() error {
	if r.Success {
		return nil
	}
	code := r.Code
	if code == "" {
		code = errors.EInternal
	}
	exitCode := r.ExitCode
	if exitCode == 0 {
		exitCode = 1
	}
	return errors.WithExitCode(errors.NewWithDetails(code, r.Message, r.Details), exitCode)
}
