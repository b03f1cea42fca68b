// Package exec runs external commands for sniperctl.
// Every subprocess (cargo, the built artifact) goes through CommandRunner so
// commands can be tested against fakes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// RunOpts configures a single command execution.
type RunOpts struct {
	// Dir is the working directory; empty means the current directory.
	Dir string

	// Env holds variables set on the child in addition to the parent's
	// environment. The parent environment is never modified.
	Env map[string]string

	// Stdin, Stdout and Stderr, when set, are attached to the child.
	// Output streams left nil are captured into CmdResult instead.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CmdResult holds the outcome of a command that started successfully.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external commands.
type CommandRunner interface {
	// Run executes name with args and waits for it to exit.
	// A non-zero exit is reported through CmdResult.ExitCode with a nil error;
	// err is non-nil only when the command could not be started.
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath resolves an executable name on PATH.
	LookPath(file string) (string, error)
}

// RealRunner is the os/exec backed CommandRunner.
type RealRunner struct {
	log logrus.FieldLogger
}

// NewRealRunner creates a RealRunner that traces command lines to log.
// A nil log uses the logrus standard logger.
func NewRealRunner(log logrus.FieldLogger) *RealRunner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RealRunner{log: log}
}

// Run implements CommandRunner.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	r.log.WithField("dir", opts.Dir).Debugf("+ %s", strings.Join(append([]string{name}, args...), " "))

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = MergeEnv(os.Environ(), opts.Env)
	}
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	cmd.Stderr = &stderr
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	err := cmd.Run()
	result := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// LookPath implements CommandRunner.
func (r *RealRunner) LookPath(file string) (string, error) {
	return osexec.LookPath(file)
}

// MergeEnv returns base with every key in overrides set, replacing any
// existing entry for that key. Override keys are appended in sorted order.
func MergeEnv(base []string, overrides map[string]string) []string {
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+overrides[k])
	}
	return out
}

// Verify RealRunner implements CommandRunner (compile-time check)
var _ CommandRunner = (*RealRunner)(nil)
