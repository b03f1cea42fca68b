// Package toolchain wraps the cargo toolchain: presence check, profile
// builds, and cleanup of build outputs.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/NielsdaWheelz/sniperctl/internal/config"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/exec"
)

// InstallHint tells the user where to obtain the toolchain.
const InstallHint = "install Rust from https://rustup.rs (curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh)"

// Toolchain runs cargo for one project.
type Toolchain struct {
	runner  exec.CommandRunner
	project config.Project
	stdout  io.Writer
	stderr  io.Writer
	log     logrus.FieldLogger
}

// New creates a Toolchain. Build and clean output is streamed to stdout and
// stderr.
func New(runner exec.CommandRunner, project config.Project, stdout, stderr io.Writer, log logrus.FieldLogger) *Toolchain {
	return &Toolchain{
		runner:  runner,
		project: project,
		stdout:  stdout,
		stderr:  stderr,
		log:     log,
	}
}

// CheckToolchain verifies cargo is resolvable on PATH and reports its version.
func (t *Toolchain) CheckToolchain(ctx context.Context) core.StageResult {
	name := t.project.Toolchain
	details := map[string]string{
		"op":        "check-toolchain",
		"toolchain": name,
		"hint":      InstallHint,
	}

	path, err := t.runner.LookPath(name)
	if err != nil {
		return core.Fail(errors.EToolchainNotInstalled, 1,
			name+" is not installed or not on PATH", details)
	}

	result, err := t.runner.Run(ctx, name, []string{"--version"}, exec.RunOpts{Dir: t.project.Root})
	if err != nil {
		return core.Fail(errors.EToolchainNotInstalled, 1,
			fmt.Sprintf("failed to run %s --version: %v", name, err), details)
	}
	if result.ExitCode != 0 {
		return core.Fail(errors.EToolchainNotInstalled, 1,
			fmt.Sprintf("%s --version exited %d", name, result.ExitCode), details)
	}

	// cargo --version prints one line; keep the first in case of noise
	version := strings.TrimSpace(strings.SplitN(result.Stdout, "\n", 2)[0])
	t.log.WithFields(logrus.Fields{"path": path, "version": version}).Debug("toolchain resolved")
	return core.Pass(version)
}

// Build compiles the project for profile and blocks until cargo exits.
// On success the message is the artifact path.
func (t *Toolchain) Build(ctx context.Context, profile core.Profile) core.StageResult {
	artifact := t.project.ArtifactPath(profile)
	args := append([]string{"build"}, profile.BuildArgs()...)
	details := map[string]string{
		"op":        "build",
		"profile":   profile.String(),
		"toolchain": t.project.Toolchain,
		"artifact":  artifact,
	}

	result, err := t.runner.Run(ctx, t.project.Toolchain, args, exec.RunOpts{
		Dir:    t.project.Root,
		Stdout: t.stdout,
		Stderr: t.stderr,
	})
	if err != nil {
		details["hint"] = InstallHint
		return core.Fail(errors.EBuildFailed, 1,
			fmt.Sprintf("failed to start %s build: %v", t.project.Toolchain, err), details)
	}
	if result.ExitCode != 0 {
		details["exit_code"] = strconv.Itoa(result.ExitCode)
		return core.Fail(errors.EBuildFailed, result.ExitCode,
			fmt.Sprintf("%s build (%s) failed with exit code %d", t.project.Toolchain, profile, result.ExitCode), details)
	}
	return core.Pass(artifact)
}

// Clean removes build outputs via cargo clean. No preconditions are checked.
func (t *Toolchain) Clean(ctx context.Context) core.StageResult {
	details := map[string]string{
		"op":        "clean",
		"toolchain": t.project.Toolchain,
	}

	result, err := t.runner.Run(ctx, t.project.Toolchain, []string{"clean"}, exec.RunOpts{
		Dir:    t.project.Root,
		Stdout: t.stdout,
		Stderr: t.stderr,
	})
	if err != nil {
		details["hint"] = InstallHint
		return core.Fail(errors.ECleanFailed, 1,
			fmt.Sprintf("failed to start %s clean: %v", t.project.Toolchain, err), details)
	}
	if result.ExitCode != 0 {
		details["exit_code"] = strconv.Itoa(result.ExitCode)
		return core.Fail(errors.ECleanFailed, result.ExitCode,
			fmt.Sprintf("%s clean failed with exit code %d", t.project.Toolchain, result.ExitCode), details)
	}
	return core.Pass("build outputs removed")
}
