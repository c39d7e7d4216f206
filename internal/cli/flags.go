package cli

import "github.com/bmdict/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	wordsFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--words"},
		ValueHint:   "<src>",
		Description: "Word list to use (file, URL or word database)",
		Scope:       dispatchers.FlagScopeLocal,
	}

	jsonFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--json"},
		Description: "Output result as JSON",
		Scope:       dispatchers.FlagScopeLocal,
	}

	LookupFlags = []dispatchers.FlagDescriptor{wordsFlag}

	DefineFlags = []dispatchers.FlagDescriptor{wordsFlag, jsonFlag}

	SuggestFlags = []dispatchers.FlagDescriptor{
		wordsFlag,
		jsonFlag,
		{
			Names:       []string{"--limit", "-n"},
			ValueHint:   "<n>",
			Description: "Maximum number of suggestions (1-10)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ExportFlags = []dispatchers.FlagDescriptor{wordsFlag}

	WordsFlags = []dispatchers.FlagDescriptor{wordsFlag}

	ConfigGetFlags = []dispatchers.FlagDescriptor{jsonFlag}

	ConfigListFlags = []dispatchers.FlagDescriptor{jsonFlag}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	LogsFlags = []dispatchers.FlagDescriptor{
		jsonFlag,
		{
			Names:       []string{"--limit", "-n"},
			ValueHint:   "<n>",
			Description: "Number of lines to show (default 50)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
