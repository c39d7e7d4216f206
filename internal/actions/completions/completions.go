package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/bmdict/cli/internal/completions"
	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/usage"
)

type Deps struct {
	Stdout       io.Writer
	RunningShell func() completions.Shell
	AutoPath     func(completions.Shell) string
	Printf       func(string, ...any) (int, error)
	Println      func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Stdout:       os.Stdout,
		RunningShell: completions.RunningShell,
		AutoPath:     completions.AutoInstallPath,
		Printf:       fmt.Printf,
		Println:      fmt.Println,
	}
}

// Completions prints the completion script (--script) or how to install it.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	var shell completions.Shell

	if len(args) > 0 {
		sh, ok := completions.ParseShell(args[0])
		if !ok {
			return usage.InvalidValue("shell", args[0], "bash", "zsh", "fish")
		}
		shell = sh
	} else {
		shell = deps.RunningShell()
		if shell == "" {
			return usage.MissingArgument("shell")
		}
	}

	if flags.Has("--script") {
		return completions.PrintCompletions(deps.Stdout, shell)
	}

	printInstructions(shell, deps)
	return nil
}

func printInstructions(shell completions.Shell, deps Deps) {
	bin := completions.GetBinaryName()

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	n := 1
	if autoPath := deps.AutoPath(shell); autoPath != "" {
		_, _ = deps.Printf("%d. Write to auto-load directory:\n", n)
		_, _ = deps.Printf("   %s completions %s --script > %s\n", bin, shell, autoPath)
		_, _ = deps.Println()
		n++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", n, completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions(shell))
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
