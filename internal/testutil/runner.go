// Package testutil provides shared fakes for sniperctl tests.
package testutil

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/NielsdaWheelz/sniperctl/internal/exec"
)

// Call records one FakeRunner.Run invocation.
type Call struct {
	Name string
	Args []string
	Opts exec.RunOpts
}

// Line returns the call as "name arg1 arg2".
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Response is the scripted outcome of a command.
type Response struct {
	Result exec.CmdResult
	Err    error
}

// FakeRunner is a scripted exec.CommandRunner. Responses are keyed by the
// full command line ("cargo build --release"); unscripted commands succeed
// with empty output.
type FakeRunner struct {
	mu        sync.Mutex
	Responses map[string]Response
	Paths     map[string]string // LookPath results; missing keys fail
	Calls     []Call
}

// NewFakeRunner returns a FakeRunner that resolves the given executables.
func NewFakeRunner(onPath ...string) *FakeRunner {
	paths := make(map[string]string, len(onPath))
	for _, name := range onPath {
		paths[name] = "/usr/bin/" + name
	}
	return &FakeRunner{
		Responses: make(map[string]Response),
		Paths:     paths,
	}
}

// On scripts the response for a command line.
func (f *FakeRunner) On(line string, result exec.CmdResult, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[line] = Response{Result: result, Err: err}
	return f
}

// Run implements exec.CommandRunner.
func (f *FakeRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := Call{Name: name, Args: append([]string(nil), args...), Opts: opts}
	f.Calls = append(f.Calls, call)
	if resp, ok := f.Responses[call.Line()]; ok {
		return resp.Result, resp.Err
	}
	return exec.CmdResult{}, nil
}

// LookPath implements exec.CommandRunner.
func (f *FakeRunner) LookPath(file string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Paths[file]; ok {
		return p, nil
	}
	return "", os.ErrNotExist
}

// Lines returns every recorded command line in order.
func (f *FakeRunner) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = c.Line()
	}
	return lines
}

var _ exec.CommandRunner = (*FakeRunner)(nil)
