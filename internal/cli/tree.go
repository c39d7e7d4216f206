package cli

import (
	"github.com/bmdict/cli/internal/actions"
	completionsactions "github.com/bmdict/cli/internal/actions/completions"
	logsactions "github.com/bmdict/cli/internal/actions/logs"
	configactions "github.com/bmdict/cli/internal/actions/config"
	themeactions "github.com/bmdict/cli/internal/actions/theme"
	"github.com/bmdict/cli/internal/actions/words"
	"github.com/bmdict/cli/internal/dispatchers"
)

// BuildTree returns the full bmd command tree.
func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:        "bmd",
		Summary:     "Look up words from the terminal",
		Description: "bmd searches a word list as you type and shows the part of speech and definition of the word you pick.",
		Usage:       "bmd <command> [flags]",
		Flags:       RootFlags,
	})

	addLookupCommands(root)
	addWordListCommands(root)
	addThemeCommands(root)
	addConfigCommands(root)
	addLogsCommands(root)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show bmd version",
		Usage:    "bmd version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Set up shell completions",
		Usage:    "bmd completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     OptionalShellArg,
		Action:   completionsactions.Completions,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "Show help for a command",
		Usage:    "bmd help [command]",
		Category: dispatchers.CategoryInfo,
	})

	return root
}

func addLookupCommands(root *dispatchers.DispatchNode) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "lookup",
		Parent:  root,
		Summary: "Search words interactively",
		Description: `Opens a search box with live suggestions. Type to filter, use the arrow
keys or the mouse to pick a word, and press Enter to open its definition.
ctrl+s searches for the exact word, ctrl+t toggles the theme.`,
		Usage:    "bmd lookup [--words=<src>]",
		Flags:    LookupFlags,
		Action:   words.Lookup,
		Category: dispatchers.CategoryLookup,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "define",
		Parent:      root,
		Summary:     "Print the definition of a word",
		Description: "Finds the first entry whose word equals the argument, ignoring case. Exits 1 when nothing matches.",
		Usage:       "bmd define <word> [--json]",
		Flags:       DefineFlags,
		Args:        WordArg,
		Action:      words.Define,
		Category:    dispatchers.CategoryLookup,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "suggest",
		Parent:      root,
		Summary:     "List words starting with a prefix",
		Description: "Prints up to 10 words that start with the prefix, in word list order.",
		Usage:       "bmd suggest <prefix> [--limit=<n>] [--json]",
		Flags:       SuggestFlags,
		Args:        PrefixArg,
		Action:      words.Suggest,
		Category:    dispatchers.CategoryLookup,
	})
}

func addWordListCommands(root *dispatchers.DispatchNode) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "import",
		Parent:  root,
		Summary: "Store a word list in the word database",
		Description: `Loads a word list from a file or URL and replaces the contents of the
word database with it. Once imported, the database is the default word list.`,
		Usage:    "bmd import <source>",
		Args:     SourceArg,
		Action:   words.Import,
		Category: dispatchers.CategoryWords,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "words",
		Parent:   root,
		Summary:  "Show the active word list and database",
		Usage:    "bmd words [--words=<src>]",
		Flags:    WordsFlags,
		Action:   words.Status,
		Category: dispatchers.CategoryWords,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "export",
		Parent:      root,
		Summary:     "Write the word list to a file",
		Description: "The output format follows the file extension: .json, .msgpack (.mpk) or .xlsx.",
		Usage:       "bmd export <destination> [--words=<src>]",
		Flags:       ExportFlags,
		Args:        DestinationArg,
		Action:      words.Export,
		Category:    dispatchers.CategoryWords,
	})
}

func addThemeCommands(root *dispatchers.DispatchNode) {
	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:        "theme",
		Parent:      root,
		Summary:     "Show the current theme",
		Description: "The saved theme wins; without one bmd follows the terminal background, then falls back to light.",
		Usage:       "bmd theme <command>",
		Action:      themeactions.Show,
		Category:    dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "toggle",
		Parent:   theme,
		Summary:  "Switch between light and dark",
		Usage:    "bmd theme toggle",
		Action:   themeactions.Toggle,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Save a theme",
		Usage:    "bmd theme set <name>",
		Args:     ThemeNameArg,
		Action:   themeactions.Set,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   theme,
		Summary:  "List themes with a color preview",
		Usage:    "bmd theme list",
		Action:   themeactions.List,
		Category: dispatchers.CategoryTheme,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Parent:   root,
		Summary:  "Manage configuration",
		Usage:    "bmd config <command>",
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "bmd config get <key> [--json]",
		Flags:    ConfigGetFlags,
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "bmd config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "bmd config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Args:     OptionalConfigKeyArg,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List all config values",
		Usage:    "bmd config list [--json]",
		Flags:    ConfigListFlags,
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})
}

func addLogsCommands(root *dispatchers.DispatchNode) {
	logs := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "logs",
		Parent:   root,
		Summary:  "Show recent log lines",
		Usage:    "bmd logs [--limit=<n>] [--json]",
		Flags:    LogsFlags,
		Action:   logsactions.View,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tail",
		Parent:   logs,
		Summary:  "Follow the log file",
		Usage:    "bmd logs tail",
		Action:   logsactions.Tail,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   logs,
		Summary:  "Empty the log file",
		Usage:    "bmd logs clear",
		Action:   logsactions.Clear,
		Category: dispatchers.CategoryInfo,
	})
}
