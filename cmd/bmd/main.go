package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/bmdict/cli/internal/actions"
	"github.com/bmdict/cli/internal/app"
	"github.com/bmdict/cli/internal/cli"
	"github.com/bmdict/cli/internal/completions"
	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/usage"
)

// valueFlags take the following argument as their value.
var valueFlags = map[string]string{
	"--words": "--words",
	"--limit": "--limit",
	"-n":      "--limit",
	"--pager": "--pager",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		return exitCode(actions.ShowVersion(nil, flags), stderr)
	}

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", "")

	application, err := app.New(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "bmd: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		application.Logger.Debug("dispatch %v: %v", commands, err)
		return exitCode(err, stderr)
	}

	application.Logger.Debug("run %s", strings.Join(res.Node.Path, " "))
	if err := res.Execute(res.Args, res.Flags); err != nil {
		application.Logger.Error("%s: %v", strings.Join(res.Node.Path, " "), err)
		return exitCode(err, stderr)
	}

	return res.ExitCode
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags and command tokens.
// Value flags given as "--flag value" become "--flag=value", -n is an alias
// of --limit, and a numeric shorthand like -5 means --limit=5.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "" {
			continue
		}
		if a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if n, err := strconv.Atoi(a[1:]); err == nil && n > 0 && a[1] != '-' {
			flags = append(flags, "--limit="+strconv.Itoa(n))
			continue
		}

		name, value, hasValue := strings.Cut(a, "=")
		canonical, isValueFlag := valueFlags[name]
		if !isValueFlag {
			flags = append(flags, a)
			continue
		}

		if hasValue {
			flags = append(flags, canonical+"="+value)
			continue
		}
		if i+1 < len(args) && args[i+1] != "" && args[i+1][0] != '-' {
			flags = append(flags, canonical+"="+args[i+1])
			i++
			continue
		}
		flags = append(flags, a)
	}

	return flags, commands
}
