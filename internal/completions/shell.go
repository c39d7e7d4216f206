package completions

import (
	"os"
	"path/filepath"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path to its binary.
func ParseShell(s string) (Shell, bool) {
	name := Shell(strings.ToLower(filepath.Base(strings.TrimSpace(s))))
	for _, sh := range Shells {
		if name == sh {
			return sh, true
		}
	}
	return "", false
}

// RunningShell guesses the user's shell from $SHELL.
func RunningShell() Shell {
	sh, _ := ParseShell(os.Getenv("SHELL"))
	return sh
}
