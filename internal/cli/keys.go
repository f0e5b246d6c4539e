package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

// dashboardKeyMap lists the table-mode bindings shown in the help line.
type dashboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Add    key.Binding
	View   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.View, k.Edit, k.Delete, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Clear},
		{k.Add, k.View, k.Edit, k.Delete, k.Quit},
	}
}

var dashboardKeys = dashboardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
	View:   key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "view")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tableKeyMap is the default table key map without the single-letter
// bindings the dashboard uses for row actions.
func tableKeyMap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up"))

	return km
}
