// Package pipeline is the staged command dispatcher. Each command maps to a
// fixed ordered list of stages; Run executes them in order and stops at the
// first failure.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
)

// Stages is the set of stage operations a command can sequence.
type Stages interface {
	CheckToolchain(ctx context.Context) core.StageResult
	CheckConfig(ctx context.Context) core.StageResult
	Build(ctx context.Context, profile core.Profile) core.StageResult
	VerifyArtifact(profile core.Profile) core.StageResult
	Launch(ctx context.Context, cfg core.RunConfig) core.StageResult
	Clean(ctx context.Context) core.StageResult
	Usage() core.StageResult
}

// Reporter is notified as stages progress. Failures are not reported here;
// they are returned to the caller.
type Reporter interface {
	StageStarted(name string)
	StageSucceeded(name string, res core.StageResult)
}

// Stage is one checked operation within a command's sequence.
type Stage struct {
	Name string
	Run  func(ctx context.Context) core.StageResult
}

type stageKind int

const (
	checkToolchain stageKind = iota
	checkConfig
	build
	verifyArtifact
	launch
	clean
	usage
)

type step struct {
	kind    stageKind
	profile core.Profile
}

var (
	preconditions = []step{{kind: checkToolchain}, {kind: checkConfig}}

	table = map[core.Command][]step{
		core.CmdBuild:        with(preconditions, step{build, core.ProfileDebug}),
		core.CmdBuildRelease: with(preconditions, step{build, core.ProfileRelease}),
		core.CmdRun:          with(preconditions, step{build, core.ProfileDebug}, step{launch, core.ProfileDebug}),
		core.CmdRunRelease:   with(preconditions, step{build, core.ProfileRelease}, step{launch, core.ProfileRelease}),
		core.CmdStart:        with(preconditions, step{verifyArtifact, core.ProfileRelease}, step{launch, core.ProfileRelease}),
		core.CmdCheck:        with(preconditions),
		core.CmdClean:        {{kind: clean}},
		core.CmdHelp:         {{kind: usage}},
	}
)

func with(prefix []step, rest ...step) []step {
	out := make([]step, 0, len(prefix)+len(rest))
	out = append(out, prefix...)
	return append(out, rest...)
}

// Plan returns the ordered stages for cmd. cfg must carry the profile of
// cmd; it is handed unchanged to the launch stage.
func Plan(cmd core.Command, cfg core.RunConfig, s Stages) ([]Stage, error) {
	steps, ok := table[cmd]
	if !ok {
		return nil, errors.NewWithDetails(errors.EUsage, "unknown command: "+string(cmd),
			map[string]string{"command": string(cmd)})
	}

	stages := make([]Stage, 0, len(steps))
	for _, st := range steps {
		st := st
		switch st.kind {
		case checkToolchain:
			stages = append(stages, Stage{Name: "check-toolchain", Run: s.CheckToolchain})
		case checkConfig:
			stages = append(stages, Stage{Name: "check-config", Run: s.CheckConfig})
		case build:
			stages = append(stages, Stage{
				Name: fmt.Sprintf("build (%s)", st.profile),
				Run:  func(ctx context.Context) core.StageResult { return s.Build(ctx, st.profile) },
			})
		case verifyArtifact:
			stages = append(stages, Stage{
				Name: fmt.Sprintf("verify-artifact (%s)", st.profile),
				Run:  func(context.Context) core.StageResult { return s.VerifyArtifact(st.profile) },
			})
		case launch:
			if cfg.Profile() != st.profile {
				return nil, errors.New(errors.EInternal,
					fmt.Sprintf("%s launches the %s profile, got run config for %s", cmd, st.profile, cfg.Profile()))
			}
			stages = append(stages, Stage{
				Name: fmt.Sprintf("run (%s)", st.profile),
				Run:  func(ctx context.Context) core.StageResult { return s.Launch(ctx, cfg) },
			})
		case clean:
			stages = append(stages, Stage{Name: "clean", Run: s.Clean})
		case usage:
			stages = append(stages, Stage{
				Name: "help",
				Run:  func(context.Context) core.StageResult { return s.Usage() },
			})
		}
	}
	return stages, nil
}

// Run executes stages in order. The first failed result ends the sequence
// and is returned; later stages never run. With every stage passing, the
// last result is returned.
func Run(ctx context.Context, stages []Stage, rep Reporter, log logrus.FieldLogger) core.StageResult {
	last := core.Pass("")
	for i, st := range stages {
		entry := log.WithFields(logrus.Fields{"stage": st.Name, "step": fmt.Sprintf("%d/%d", i+1, len(stages))})
		entry.Debug("stage started")
		if rep != nil {
			rep.StageStarted(st.Name)
		}

		res := st.Run(ctx)
		if !res.Success {
			entry.WithFields(logrus.Fields{"code": res.Code, "exit_code": res.ExitCode}).Debug("stage failed")
			return res
		}

		entry.Debug("stage passed")
		if rep != nil {
			rep.StageSucceeded(st.Name, res)
		}
		last = res
	}
	return last
}

// Dispatch plans and runs cmd, returning the failing stage as an error.
func Dispatch(ctx context.Context, cmd core.Command, cfg core.RunConfig, s Stages, rep Reporter, log logrus.FieldLogger) error {
	stages, err := Plan(cmd, cfg, s)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"command": cmd, "stages": len(stages)}).Debug("dispatching")

	res := Run(ctx, stages, rep, log)
	if res.Success {
		return nil
	}
	details := make(map[string]string, len(res.Details)+1)
	details["command"] = string(cmd)
	for k, v := range res.Details {
		details[k] = v
	}
	res.Details = details
	return res.Err()
}
