// Package commands wires the sniperctl lifecycle stages to their real
// collaborators.
package commands

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/NielsdaWheelz/sniperctl/internal/config"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/envfile"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/exec"
	"github.com/NielsdaWheelz/sniperctl/internal/fs"
	"github.com/NielsdaWheelz/sniperctl/internal/launch"
	"github.com/NielsdaWheelz/sniperctl/internal/pipeline"
	"github.com/NielsdaWheelz/sniperctl/internal/toolchain"
)

// Deps are the external collaborators a lifecycle command runs against.
type Deps struct {
	Runner exec.CommandRunner
	FS     fs.FS
	Cwd    string
	Env    config.Env
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
}

// Lifecycle implements pipeline.Stages on the real toolchain, env file and
// launcher.
type Lifecycle struct {
	project    config.Project
	fsys       fs.FS
	toolchain  *toolchain.Toolchain
	launcher   *launch.Launcher
	stdout     io.Writer
	printUsage func(io.Writer) error
	log        logrus.FieldLogger
}

// NewLifecycle wires the stage implementations for the project rooted at
// d.Cwd. printUsage renders the help text for the help command.
func NewLifecycle(d Deps, printUsage func(io.Writer) error) *Lifecycle {
	project := config.Resolve(d.Cwd, d.Env)
	return &Lifecycle{
		project:   project,
		fsys:      d.FS,
		toolchain: toolchain.New(d.Runner, project, d.Stdout, d.Stderr, d.Log),
		launcher: launch.New(d.Runner, d.FS, project, launch.Streams{
			Stdin:  d.Stdin,
			Stdout: d.Stdout,
			Stderr: d.Stderr,
		}, d.Log),
		stdout:     d.Stdout,
		printUsage: printUsage,
		log:        d.Log,
	}
}

// Project returns the resolved project layout.
func (l *Lifecycle) Project() config.Project {
	return l.project
}

func (l *Lifecycle) CheckToolchain(ctx context.Context) core.StageResult {
	return l.toolchain.CheckToolchain(ctx)
}

func (l *Lifecycle) CheckConfig(context.Context) core.StageResult {
	return envfile.CheckConfig(l.fsys, l.project, l.log)
}

func (l *Lifecycle) Build(ctx context.Context, profile core.Profile) core.StageResult {
	return l.toolchain.Build(ctx, profile)
}

func (l *Lifecycle) VerifyArtifact(profile core.Profile) core.StageResult {
	return l.launcher.VerifyArtifact(profile)
}

func (l *Lifecycle) Launch(ctx context.Context, cfg core.RunConfig) core.StageResult {
	return l.launcher.Run(ctx, cfg)
}

func (l *Lifecycle) Clean(ctx context.Context) core.StageResult {
	return l.toolchain.Clean(ctx)
}

func (l *Lifecycle) Usage() core.StageResult {
	if l.printUsage == nil {
		return core.Pass("")
	}
	if err := l.printUsage(l.stdout); err != nil {
		return core.Fail(errors.EInternal, 1, "failed to print usage: "+err.Error(), nil)
	}
	return core.Pass("")
}

var _ pipeline.Stages = (*Lifecycle)(nil)

// Dispatch runs cmd against l. The run configuration is built here, once,
// from logLevel and the command's profile.
func Dispatch(ctx context.Context, cmd core.Command, logLevel string, l *Lifecycle, rep pipeline.Reporter) error {
	cfg := core.NewRunConfig(logLevel, cmd.Profile())
	return pipeline.Dispatch(ctx, cmd, cfg, l, rep, l.log)
}
