package testutil

import (
	"fmt"
	"os"
)

// UnsetCtlEnv clears environment variables that change sniperctl's layout
// or logging so tests see the defaults.
func UnsetCtlEnv() error {
	envVars := []string{
		"SNIPERCTL_TOOLCHAIN",
		"SNIPERCTL_BINARY",
		"SNIPERCTL_DEBUG",
		"RUST_LOG",
	}
	for _, name := range envVars {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("unset %s: %w", name, err)
		}
	}
	return nil
}
