// Command sniperctl builds and runs the sol-sniper bot.
package main

import (
	"os"

	"github.com/NielsdaWheelz/sniperctl/internal/cli/cobra"
	"github.com/NielsdaWheelz/sniperctl/internal/errors"
	"github.com/NielsdaWheelz/sniperctl/internal/logging"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		// SNIPERCTL_DEBUG also prints the details outside the whitelist
		opts := errors.PrintOptions{
			Verbose: os.Getenv(logging.EnvDebug) != "",
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
