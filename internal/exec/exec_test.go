package exec

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRealRunner_CapturesStdout(t *testing.T) {
	r := NewRealRunner(quietLogger())
	result, err := r.Run(context.Background(), "sh", []string{"-c", "printf hello"}, RunOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "hello" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello")
	}
}

func TestRealRunner_NonZeroExitIsNotAnError(t *testing.T) {
	r := NewRealRunner(quietLogger())
	result, err := r.Run(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 7"}, RunOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", result.ExitCode)
	}
	if strings.TrimSpace(result.Stderr) != "oops" {
		t.Errorf("Stderr = %q, want %q", result.Stderr, "oops")
	}
}

func TestRealRunner_MissingBinary(t *testing.T) {
	r := NewRealRunner(quietLogger())
	_, err := r.Run(context.Background(), "sniperctl-definitely-not-a-binary", nil, RunOpts{})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRealRunner_EnvOverride(t *testing.T) {
	t.Setenv("RUST_LOG", "warn")
	r := NewRealRunner(quietLogger())
	result, err := r.Run(context.Background(), "sh", []string{"-c", `printf %s "$RUST_LOG"`}, RunOpts{
		Env: map[string]string{"RUST_LOG": "debug"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stdout != "debug" {
		t.Errorf("child RUST_LOG = %q, want %q", result.Stdout, "debug")
	}
}

func TestRealRunner_StreamsToWriters(t *testing.T) {
	var out bytes.Buffer
	r := NewRealRunner(quietLogger())
	result, err := r.Run(context.Background(), "sh", []string{"-c", "cat"}, RunOpts{
		Stdin:  strings.NewReader("piped"),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "piped" {
		t.Errorf("streamed stdout = %q, want %q", out.String(), "piped")
	}
	if result.Stdout != "" {
		t.Errorf("captured stdout = %q, want empty when streaming", result.Stdout)
	}
}

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/bin", "RUST_LOG=warn", "HOME=/root"}
	got := MergeEnv(base, map[string]string{"RUST_LOG": "trace", "EXTRA": "1"})
	want := []string{"PATH=/bin", "HOME=/root", "EXTRA=1", "RUST_LOG=trace"}

	if len(got) != len(want) {
		t.Fatalf("MergeEnv() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MergeEnv()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if base[1] != "RUST_LOG=warn" {
		t.Error("MergeEnv must not modify base")
	}
}
