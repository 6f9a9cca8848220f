package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeInput is active while the text input has focus
	ModeInput Mode = iota
	// ModeTags is active while a selected-value chip has focus
	ModeTags
)

func (m Mode) String() string {
	switch m {
	case ModeTags:
		return "tags"
	default:
		return "input"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to combobox state needed for input handling
type Context interface {
	PopupOpen() bool
	FocusedTag() int
	Multiple() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
