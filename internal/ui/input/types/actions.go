package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"combogrip/internal/engine"
)

// EngineKeyAction forwards a key to the combobox engine. Fallback runs when
// the engine leaves the key unhandled.
type EngineKeyAction struct {
	Key      engine.Key
	Mods     engine.Modifiers
	Fallback Action
}

func (a EngineKeyAction) Type() string { return "engine_key" }

// EditTextAction applies a key to the text input
type EditTextAction struct {
	Msg tea.KeyMsg
}

func (a EditTextAction) Type() string { return "edit_text" }

// SubmitAction accepts the current value and exits
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// CancelAction exits without a result
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// ClearAction empties the input and the value
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// TogglePopupAction opens or closes the option list
type TogglePopupAction struct{}

func (a TogglePopupAction) Type() string { return "toggle_popup" }

// ShowHelpAction opens the help pager
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }
