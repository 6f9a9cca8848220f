package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt       lipgloss.Style
	Placeholder  lipgloss.Style
	Selection    lipgloss.Style
	Chip         lipgloss.Style
	ChipFocused  lipgloss.Style
	Option       lipgloss.Style
	Highlighted  lipgloss.Style
	Selected     lipgloss.Style
	Disabled     lipgloss.Style
	Match        lipgloss.Style
	GroupHeader  lipgloss.Style
	Scroll       lipgloss.Style
	Empty        lipgloss.Style
	Suggestion   lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Dim          lipgloss.Style
	PopupClosed  lipgloss.Style
	PopupOpened  lipgloss.Style
	ReadOnlyMark lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Selection:   lipgloss.NewStyle().Reverse(true),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1),
		Option:       lipgloss.NewStyle(),
		Highlighted:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Disabled:     lipgloss.NewStyle().Faint(true),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		GroupHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:        lipgloss.NewStyle().Faint(true),
		Suggestion:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(0, 1),
		Dim:          lipgloss.NewStyle().Faint(true),
		PopupClosed:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PopupOpened:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		ReadOnlyMark: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
