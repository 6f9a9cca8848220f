package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combogrip/internal/engine"
	"combogrip/internal/ui/input/types"
)

// Bindings is the subset of the key map the modes react to
type Bindings struct {
	Up, Down, PageUp, PageDown, Home, End key.Binding
	Left, Right, Select, Escape          key.Binding
	Backspace, Delete, Clear, Toggle     key.Binding
	Help, Cancel                         key.Binding
}

// InputMode handles keys while the text input has focus
type InputMode struct {
	keys Bindings
}

func NewInputMode(keys Bindings) *InputMode {
	return &InputMode{keys: keys}
}

func (m *InputMode) Name() string {
	return "input"
}

func (m *InputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	mods := Modifiers(msg)
	edit := types.EditTextAction{Msg: msg}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{types.CancelAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearAction{}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.TogglePopupAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return engineKey(engine.KeyArrowUp, mods, nil), true
	case key.Matches(msg, m.keys.Down):
		return engineKey(engine.KeyArrowDown, mods, nil), true
	case key.Matches(msg, m.keys.PageUp):
		return engineKey(engine.KeyPageUp, mods, nil), true
	case key.Matches(msg, m.keys.PageDown):
		return engineKey(engine.KeyPageDown, mods, nil), true
	case key.Matches(msg, m.keys.Home):
		return engineKey(engine.KeyHome, mods, edit), true
	case key.Matches(msg, m.keys.End):
		return engineKey(engine.KeyEnd, mods, edit), true
	case key.Matches(msg, m.keys.Left):
		// chip focus moves and the caret moves with it
		return append(engineKey(engine.KeyArrowLeft, mods, nil), edit), true
	case key.Matches(msg, m.keys.Right):
		return append(engineKey(engine.KeyArrowRight, mods, nil), edit), true
	case key.Matches(msg, m.keys.Select):
		return engineKey(engine.KeyEnter, mods, types.SubmitAction{}), true
	case key.Matches(msg, m.keys.Escape):
		return engineKey(engine.KeyEscape, mods, types.CancelAction{}), true
	case key.Matches(msg, m.keys.Backspace):
		return engineKey(engine.KeyBackspace, mods, edit), true
	case key.Matches(msg, m.keys.Delete):
		return engineKey(engine.KeyDelete, mods, edit), true
	}
	return []types.Action{edit}, true
}

// Modifiers maps the terminal modifiers onto the engine's. Alt doubles as
// the meta key since terminals do not report either Ctrl or Meta with Enter.
func Modifiers(msg tea.KeyMsg) engine.Modifiers {
	return engine.Modifiers{Alt: msg.Alt, Meta: msg.Alt}
}

func engineKey(k engine.Key, mods engine.Modifiers, fallback types.Action) []types.Action {
	return []types.Action{types.EngineKeyAction{Key: k, Mods: mods, Fallback: fallback}}
}
