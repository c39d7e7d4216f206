// Package completions generates shell completion scripts from the command
// tree.
package completions

import (
	"maps"
	"slices"

	"github.com/bmdict/cli/internal/dispatchers"
)

// CommandInfo is one node of the command tree, flattened for the generators.
type CommandInfo struct {
	Name        string
	Path        []string // from the root, e.g. ["bmd", "theme", "set"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the tree depth first. Subcommands are sorted so the
// generated scripts are stable.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	names := slices.Sorted(maps.Keys(node.Children))

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: names,
		Flags:       flags,
	})

	for _, name := range names {
		extractNode(node.Children[name], commands)
	}
}

// FindCommand finds a command by its full path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func binaryOf(commands []CommandInfo) string {
	if len(commands) == 0 || len(commands[0].Path) == 0 {
		return GetBinaryName()
	}
	return commands[0].Path[0]
}
