package errors

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(EUsage, "test message")

	if err.Error() != "E_USAGE: test message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "E_USAGE: test message")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(EInternal, "wrapped message", cause)

	if err.Error() != "E_INTERNAL: wrapped message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "E_INTERNAL: wrapped message")
	}

	var ce *CtlError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Cause != cause {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, ""},
		{"ctl error", New(EUsage, "x"), EUsage},
		{"wrapped ctl error", Wrap(EBuildFailed, "y", errors.New("z")), EBuildFailed},
		{"behind exit code", WithExitCode(New(EBuildFailed, "y"), 101), EBuildFailed},
		{"behind fmt wrap", fmt.Errorf("ctx: %w", New(EConfigMissing, "y")), EConfigMissing},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetCode(tt.err)
			if got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"E_USAGE", New(EUsage, "x"), 2},
		{"E_TOOLCHAIN_NOT_INSTALLED", New(EToolchainNotInstalled, "x"), 1},
		{"explicit code", WithExitCode(New(EBuildFailed, "x"), 101), 101},
		{"explicit code wrapped", fmt.Errorf("outer: %w", WithExitCode(New(ELaunchFailed, "x"), 7)), 7},
		{"explicit code wins over usage", WithExitCode(New(EUsage, "x"), 64), 64},
		{"plain error", errors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCode(tt.err)
			if got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeError_NilErr(t *testing.T) {
	err := &ExitCodeError{Code: 3}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit code 3")
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"E_USAGE", New(EUsage, "bad args"), "error_code: E_USAGE\nbad args\ntry: sniperctl help\n"},
		{"E_BUILD_FAILED", New(EBuildFailed, "cargo build failed"), "error_code: E_BUILD_FAILED\ncargo build failed\n"},
		{"plain", errors.New("boom"), "boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Print(&buf, tt.err)
			got := buf.String()
			if got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorFormatStability(t *testing.T) {
	// The format MUST be: "CODE: message"
	err := New(EArtifactMissing, "x")
	expected := "E_ARTIFACT_MISSING: x"
	if err.Error() != expected {
		t.Errorf("error format changed: got %q, want %q", err.Error(), expected)
	}
}

func TestNewWithDetails_NilDetails(t *testing.T) {
	err := NewWithDetails(EUsage, "test", nil)

	ce, ok := AsCtlError(err)
	if !ok {
		t.Fatal("AsCtlError failed")
	}
	if ce.Details != nil {
		t.Errorf("Details should be nil, got %v", ce.Details)
	}
}

func TestNewWithDetails_Copy(t *testing.T) {
	details := map[string]string{"key": "value"}
	err := NewWithDetails(EUsage, "test", details)

	details["key"] = "modified"

	ce, ok := AsCtlError(err)
	if !ok {
		t.Fatal("AsCtlError failed")
	}
	if ce.Details["key"] != "value" {
		t.Errorf("Details should be copied, got %q", ce.Details["key"])
	}
}

func TestWrapWithDetails(t *testing.T) {
	cause := errors.New("underlying")
	err := WrapWithDetails(ELaunchFailed, "wrapped", cause, map[string]string{"artifact": "target/release/sol-sniper"})

	ce, ok := AsCtlError(err)
	if !ok {
		t.Fatal("AsCtlError failed")
	}
	if ce.Cause != cause {
		t.Error("Cause not set")
	}
	if ce.Details["artifact"] != "target/release/sol-sniper" {
		t.Errorf("Details[artifact] = %q", ce.Details["artifact"])
	}
}

func TestAsCtlError(t *testing.T) {
	t.Run("non ctl error", func(t *testing.T) {
		ce, ok := AsCtlError(errors.New("regular error"))
		if ok || ce != nil {
			t.Error("should return nil, false for plain errors")
		}
	})

	t.Run("nil error", func(t *testing.T) {
		ce, ok := AsCtlError(nil)
		if ok || ce != nil {
			t.Error("should return nil, false for nil")
		}
	})
}

func TestErrorCodeStrings(t *testing.T) {
	want := map[Code]string{
		EUsage:                 "E_USAGE",
		EInternal:              "E_INTERNAL",
		EToolchainNotInstalled: "E_TOOLCHAIN_NOT_INSTALLED",
		EConfigMissing:         "E_CONFIG_MISSING",
		EBuildFailed:           "E_BUILD_FAILED",
		ECleanFailed:           "E_CLEAN_FAILED",
		EArtifactMissing:       "E_ARTIFACT_MISSING",
		ELaunchFailed:          "E_LAUNCH_FAILED",
	}
	for code, s := range want {
		if string(code) != s {
			t.Errorf("code = %q, want %q", code, s)
		}
	}
}
