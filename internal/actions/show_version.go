package actions

import "github.com/bmdict/cli/internal/dispatchers"

// ShowVersion prints the build version and platform.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.Printf("bmd version %s (%s)\n", deps.Version(), deps.Platform())
	return nil
}
