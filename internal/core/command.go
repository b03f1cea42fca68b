// Package core holds the data model shared by the sniperctl stages:
// commands, build profiles, the runtime configuration and stage results.
package core

// Command is a user-selected lifecycle command.
type Command string

// Commands. The set is fixed; ParseCommand rejects anything else.
const (
	CmdBuild        Command = "build"
	CmdBuildRelease Command = "build-release"
	CmdRun          Command = "run"
	CmdRunRelease   Command = "run-release"
	CmdStart        Command = "start"
	CmdCheck        Command = "check"
	CmdClean        Command = "clean"
	CmdHelp         Command = "help"
)

// AllCommands lists every command in help order.
var AllCommands = []Command{
	CmdBuild,
	CmdBuildRelease,
	CmdRun,
	CmdRunRelease,
	CmdStart,
	CmdCheck,
	CmdClean,
	CmdHelp,
}

// ParseCommand maps a command token to a Command.
func ParseCommand(token string) (Command, bool) {
	for _, c := range AllCommands {
		if string(c) == token {
			return c, true
		}
	}
	return "", false
}

func (c Command) String() string {
	return string(c)
}

// Profile returns the build profile a command operates on.
// Commands without a build or launch stage report ProfileDebug.
func (c Command) Profile() Profile {
	switch c {
	case CmdBuildRelease, CmdRunRelease, CmdStart:
		return ProfileRelease
	default:
		return ProfileDebug
	}
}
