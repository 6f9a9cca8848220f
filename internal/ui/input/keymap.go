package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the combobox key bindings
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Escape    key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Toggle    key.Binding
	Help      key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous chip")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next chip")),
		Select:    key.NewBinding(key.WithKeys("enter", "alt+enter"), key.WithHelp("enter", "select")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "remove chip")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove focused chip")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Toggle:    key.NewBinding(key.WithKeys("alt+down", "ctrl+o"), key.WithHelp("ctrl+o", "toggle list")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.Escape, k.Toggle, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Escape, k.Clear, k.Toggle},
		{k.Left, k.Right, k.Backspace, k.Delete},
		{k.Help, k.Cancel},
	}
}

// Bindings lists every binding in display order
func (k KeyMap) Bindings() []key.Binding {
	var out []key.Binding
	for _, column := range k.FullHelp() {
		out = append(out, column...)
	}
	return out
}
