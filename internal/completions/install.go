package completions

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoCommandTree means main never called RegisterCommandTree.
var ErrNoCommandTree = errors.New("completions: command tree not registered")

var generators = map[Shell]func([]CommandInfo) string{
	ShellBash: GenerateBash,
	ShellZsh:  GenerateZsh,
	ShellFish: GenerateFish,
}

// PrintCompletions writes the script for shell, built from the registered
// command tree, to w.
func PrintCompletions(w io.Writer, shell Shell) error {
	generate, ok := generators[shell]
	if !ok {
		return fmt.Errorf("completions: unsupported shell %q (want bash, zsh or fish)", shell)
	}

	root := GetCommandTree()
	if root == nil {
		return ErrNoCommandTree
	}

	_, err := io.WriteString(w, generate(ExtractCommands(root)))
	return err
}
