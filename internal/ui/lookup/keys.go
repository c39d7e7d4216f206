package lookup

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Search key.Binding
	Escape key.Binding
	Theme  key.Binding
	Copy   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
		Search: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "search")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "hide")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^T", "theme")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Close:  key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("Esc/x", "close")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "quit")),
	}
}

// searchHelp is the footer while the search box has focus.
func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Search, k.Escape, k.Theme, k.Quit}
}

// detailHelp is the footer while the detail panel is open.
func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Close, k.Copy, k.Theme, k.Quit}
}
