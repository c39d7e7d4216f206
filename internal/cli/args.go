package cli

import "github.com/bmdict/cli/internal/dispatchers"

var (
	WordArg = []dispatchers.ArgSpec{
		{
			Name:        "word",
			Description: "Word to define (matched case-insensitively)",
			Required:    true,
		},
	}

	PrefixArg = []dispatchers.ArgSpec{
		{
			Name:        "prefix",
			Description: "Beginning of the word",
			Required:    true,
		},
	}

	SourceArg = []dispatchers.ArgSpec{
		{
			Name:        "source",
			Description: "Word list file or URL (.json, .msgpack, .xlsx, .html, .db, http(s)://)",
			Required:    true,
		},
	}

	DestinationArg = []dispatchers.ArgSpec{
		{
			Name:        "destination",
			Description: "Output file (.json, .msgpack, .xlsx)",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	OptionalConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key (omit with --all)",
			Required:    false,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (light or dark)",
			Required:    true,
		},
	}

	OptionalShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish (defaults to $SHELL)",
			Required:    false,
		},
	}
)
