package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combogrip/internal/engine"
	"combogrip/internal/ui/input/types"
)

// TagsMode handles keys while a chip has focus. Chip keys never reach the
// text input; anything else is typed into it.
type TagsMode struct {
	keys  Bindings
	input *InputMode
}

func NewTagsMode(keys Bindings, input *InputMode) *TagsMode {
	return &TagsMode{keys: keys, input: input}
}

func (m *TagsMode) Name() string {
	return "tags"
}

func (m *TagsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	mods := Modifiers(msg)
	switch {
	case key.Matches(msg, m.keys.Left):
		return engineKey(engine.KeyArrowLeft, mods, nil), true
	case key.Matches(msg, m.keys.Right):
		return engineKey(engine.KeyArrowRight, mods, nil), true
	case key.Matches(msg, m.keys.Backspace):
		return engineKey(engine.KeyBackspace, mods, nil), true
	case key.Matches(msg, m.keys.Delete):
		return engineKey(engine.KeyDelete, mods, nil), true
	}
	return m.input.HandleKey(msg, ctx)
}
