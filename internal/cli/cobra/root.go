// Package cobra provides the Cobra-based CLI command tree for sniperctl.
package cobra

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/sniperctl/internal/commands"
	"github.com/NielsdaWheelz/sniperctl/internal/core"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/exec"
	"github.com/NielsdaWheelz/sniperctl/internal/fs"
	"github.com/NielsdaWheelz/sniperctl/internal/logging"
	"github.com/NielsdaWheelz/sniperctl/internal/ui"
)

// GlobalOpts holds the options shared by every command.
type GlobalOpts struct {
	// LogLevel is forwarded verbatim to the launched binary.
	LogLevel string
}

type osEnv struct{}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

// NewRootCmd creates the root cobra command for sniperctl. Every lifecycle
// command runs against deps.
func NewRootCmd(deps commands.Deps) *cobra.Command {
	opts := &GlobalOpts{}

	rootCmd := &cobra.Command{
		Use:   "sniperctl [command]",
		Short: "Build and run the sol-sniper bot",
		Long: `sniperctl - build and run the sol-sniper bot

sniperctl checks that cargo and the .env config are in place, builds the
sol-sniper crate in the debug or release profile, and launches the binary in
the foreground with RUST_LOG set from --log-level.`,
		Example: `  sniperctl check
  sniperctl run --log-level debug
  sniperctl build-release && sniperctl start`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // Usage is printed by usageError
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(cmd, fmt.Sprintf("unknown command %q", args[0]))
			}
			return runLifecycle(cmd, core.CmdHelp, opts, deps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", core.DefaultLogLevel,
		"log level for the launched binary, set as RUST_LOG (trace, debug, info, warn, error)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err.Error())
	})

	// --log-level is the only option besides --help/-h
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	for _, c := range core.AllCommands {
		if c == core.CmdHelp {
			rootCmd.SetHelpCommand(newLifecycleCmd(c, opts, deps))
			continue
		}
		rootCmd.AddCommand(newLifecycleCmd(c, opts, deps))
	}

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to get working directory", err)
	}

	log := logging.FromEnv(stderr, os.Getenv)
	deps := commands.Deps{
		Runner: exec.NewRealRunner(log),
		FS:     fs.NewRealFS(),
		Cwd:    cwd,
		Env:    osEnv{},
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Log:    log,
	}

	rootCmd := NewRootCmd(deps)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// runLifecycle dispatches c through the stage pipeline.
func runLifecycle(cmd *cobra.Command, c core.Command, opts *GlobalOpts, deps commands.Deps) error {
	root := cmd.Root()
	lc := commands.NewLifecycle(deps, func(w io.Writer) error {
		return writeHelp(w, root)
	})
	printer := ui.NewPrinter(cmd.OutOrStdout(), os.Getenv("NO_COLOR") != "")
	return commands.Dispatch(context.Background(), c, opts.LogLevel, lc, printer)
}

// usageError prints the full help text to stderr and returns an E_USAGE
// error. No stage has run at this point.
func usageError(cmd *cobra.Command, msg string) error {
	_ = writeHelp(cmd.ErrOrStderr(), cmd.Root())
	return errors.NewWithDetails(errors.EUsage, msg, map[string]string{"command": cmd.CommandPath()})
}

func writeHelp(w io.Writer, root *cobra.Command) error {
	_, err := fmt.Fprintf(w, "%s\n\n%s", strings.TrimSpace(root.Long), root.UsageString())
	return err
}
