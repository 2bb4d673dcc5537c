package keys

import (
	key "github.com/charmbracelet/bubbles/key"
)

// ListKeyMap holds the bindings active on the tool list
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// CardKeyMap holds the bindings active on an open tool card
type CardKeyMap struct {
	Run        key.Binding
	Attach     key.Binding
	ClearFile  key.Binding
	Copy       key.Binding
	Visit      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewListKeyMap returns the default list bindings. Printable keys always go
// to the search field, so navigation uses arrows and control keys only.
func NewListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tool"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// NewCardKeyMap returns the default card bindings
func NewCardKeyMap() CardKeyMap {
	return CardKeyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "attach file"),
		),
		ClearFile: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear file"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy output"),
		),
		Visit: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "visit site"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Clear},
		{k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap
func (k CardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Attach, k.Copy, k.Back, k.Help}
}

// FullHelp implements help.KeyMap
func (k CardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Attach, k.ClearFile},
		{k.Copy, k.Visit},
		{k.ScrollUp, k.ScrollDown},
		{k.Back, k.Help, k.Quit},
	}
}

// IsPrintableCharacter checks if a key string represents a single printable character
func IsPrintableCharacter(keyStr string) bool {
	return len(keyStr) == 1 && keyStr[0] >= ' ' && keyStr[0] <= '~'
}
