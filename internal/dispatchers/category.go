package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryLookup                        // Searching the word list
	CategoryWords                         // Managing word lists
	CategoryConfig                        // Configuration
	CategoryTheme                         // Theme
	CategoryInfo                          // Version and help
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryLookup:
		return "look up words"
	case CategoryWords:
		return "manage word lists"
	case CategoryConfig:
		return "configure bmd"
	case CategoryTheme:
		return "customize appearance"
	case CategoryInfo:
		return "information"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryLookup,
	CategoryWords,
	CategoryConfig,
	CategoryTheme,
	CategoryInfo,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
