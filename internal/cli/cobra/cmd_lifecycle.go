package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/sniperctl/internal/commands"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
)

type commandDoc struct {
	short string
	long  string
}

var commandDocs = map[core.Command]commandDoc{
	core.CmdBuild: {
		short: "Build the debug binary",
		long: `Build the debug binary.
Checks cargo and .env, then runs 'cargo build'.`,
	},
	core.CmdBuildRelease: {
		short: "Build the optimized release binary",
		long: `Build the optimized release binary.
Checks cargo and .env, then runs 'cargo build --release'.`,
	},
	core.CmdRun: {
		short: "Build and run the debug binary",
		long: `Build and run the debug binary.
Always rebuilds before launching. The binary runs in the foreground with
RUST_LOG set from --log-level; its exit code becomes sniperctl's.`,
	},
	core.CmdRunRelease: {
		short: "Build and run the release binary",
		long: `Build and run the release binary.
Always rebuilds before launching. The binary runs in the foreground with
RUST_LOG set from --log-level; its exit code becomes sniperctl's.`,
	},
	core.CmdStart: {
		short: "Run the existing release binary without building",
		long: `Run the existing release binary without building.
Fails if target/release/sol-sniper has not been built; run
'sniperctl build-release' first.`,
	},
	core.CmdCheck: {
		short: "Check cargo and the .env config",
		long: `Check that cargo is on PATH and that .env exists.
If .env is missing it is created from .env.example and the check fails so
the new file can be edited before the next run.`,
	},
	core.CmdClean: {
		short: "Remove build outputs",
		long:  "Remove build outputs with 'cargo clean'. No checks are run.",
	},
	core.CmdHelp: {
		short: "Show this help",
		long:  "Show the full sniperctl help.",
	},
}

// newLifecycleCmd creates the cobra command for a lifecycle command.
func newLifecycleCmd(c core.Command, opts *GlobalOpts, deps commands.Deps) *cobra.Command {
	doc := commandDocs[c]
	return &cobra.Command{
		Use:   c.String(),
		Short: doc.short,
		Long:  doc.long,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(cmd, c, opts, deps)
		},
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(cmd, fmt.Sprintf("unexpected argument %q for %s", args[0], cmd.Name()))
	}
	return nil
}
