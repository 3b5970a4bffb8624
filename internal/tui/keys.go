package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Grid
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding

	// Day detail
	Open   key.Binding
	Add    key.Binding
	Delete key.Binding
	Back   key.Binding

	// Application
	NextTab   key.Binding
	PrevTab   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next day"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup", "p"),
			key.WithHelp("[/p", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown", "n"),
			key.WithHelp("]/n", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "today"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open day"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add transaction"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "backspace"),
			key.WithHelp("d", "delete transaction"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Add, k.PrevMonth, k.NextMonth, k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Open, k.Add, k.Delete, k.Back},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}

// detailKeys is the short help shown while a day is open.
func (k KeyMap) detailKeys() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Back}
}
