package dispatchers

type RootSpec struct {
	Name        string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
}

type GroupSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	// Action runs when the group is invoked without a subcommand. Nil shows
	// the group's help.
	Action   CommandFunc
	Category CommandCategory
}

type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Action      CommandFunc
	Category    CommandCategory
}
