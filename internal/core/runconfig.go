package core

// DefaultLogLevel is forwarded to the launched process when --log-level is
// not given.
const DefaultLogLevel = "info"

// RunConfig is the runtime configuration handed to the launcher.
// It is built once per invocation and passed by value; the fields have no
// setters.
type RunConfig struct {
	logLevel string
	profile  Profile
}

// NewRunConfig builds a RunConfig. An empty level falls back to
// DefaultLogLevel; any other value is kept verbatim.
func NewRunConfig(logLevel string, profile Profile) RunConfig {
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	return RunConfig{logLevel: logLevel, profile: profile}
}

// LogLevel returns the level forwarded to the launched process.
func (c RunConfig) LogLevel() string { return c.logLevel }

// Profile returns the build profile of the artifact to launch.
func (c RunConfig) Profile() Profile { return c.profile }
