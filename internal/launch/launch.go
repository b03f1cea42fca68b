// Package launch starts the built artifact in the foreground.
package launch

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/NielsdaWheelz/sniperctl/internal/config"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/exec"
	"github.com/NielsdaWheelz/sniperctl/internal/fs"
)

// Launcher runs the project's artifact with the caller's standard streams.
type Launcher struct {
	runner  exec.CommandRunner
	fsys    fs.FS
	project config.Project
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     logrus.FieldLogger
}

// Streams are the standard streams handed to the launched process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Launcher.
func New(runner exec.CommandRunner, fsys fs.FS, project config.Project, streams Streams, log logrus.FieldLogger) *Launcher {
	return &Launcher{
		runner:  runner,
		fsys:    fsys,
		project: project,
		stdin:   streams.Stdin,
		stdout:  streams.Stdout,
		stderr:  streams.Stderr,
		log:     log,
	}
}

// VerifyArtifact fails when the binary for profile has not been built.
func (l *Launcher) VerifyArtifact(profile core.Profile) core.StageResult {
	artifact := l.project.ArtifactPath(profile)
	details := map[string]string{
		"op":       "verify-artifact",
		"profile":  profile.String(),
		"artifact": artifact,
	}

	ok, err := fs.Exists(l.fsys, artifact)
	if err != nil {
		return core.Fail(errors.EArtifactMissing, 1,
			fmt.Sprintf("cannot check %s artifact: %v", profile, err), details)
	}
	if !ok {
		details["hint"] = "build it first with 'sniperctl " + buildCommand(profile) + "'"
		return core.Fail(errors.EArtifactMissing, 1,
			fmt.Sprintf("%s artifact not found at %s", profile, artifact), details)
	}
	return core.Pass(artifact)
}

// Run launches the artifact for cfg's profile and waits for it to exit.
// The log level is set only in the child's environment.
func (l *Launcher) Run(ctx context.Context, cfg core.RunConfig) core.StageResult {
	artifact := l.project.ArtifactPath(cfg.Profile())
	details := map[string]string{
		"op":        "run",
		"profile":   cfg.Profile().String(),
		"artifact":  artifact,
		"log_level": cfg.LogLevel(),
	}

	l.log.WithFields(logrus.Fields{
		"artifact":          artifact,
		l.project.LogEnvVar: cfg.LogLevel(),
	}).Debug("launching")

	result, err := l.runner.Run(ctx, artifact, nil, exec.RunOpts{
		Dir:    l.project.Root,
		Env:    map[string]string{l.project.LogEnvVar: cfg.LogLevel()},
		Stdin:  l.stdin,
		Stdout: l.stdout,
		Stderr: l.stderr,
	})
	if err != nil {
		return core.Fail(errors.ELaunchFailed, 1,
			fmt.Sprintf("failed to start %s: %v", l.project.BinaryName, err), details)
	}
	if result.ExitCode != 0 {
		details["exit_code"] = strconv.Itoa(result.ExitCode)
		return core.Fail(errors.ELaunchFailed, result.ExitCode,
			fmt.Sprintf("%s exited with code %d", l.project.BinaryName, result.ExitCode), details)
	}
	return core.Pass(l.project.BinaryName + " exited cleanly")
}

func buildCommand(profile core.Profile) string {
	if profile == core.ProfileRelease {
		return string(core.CmdBuildRelease)
	}
	return string(core.CmdBuild)
}
