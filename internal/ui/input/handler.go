package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"combogrip/internal/ui/input/modes"
	"combogrip/internal/ui/input/types"
)

// Handler turns key messages into actions for the model. The mode follows
// the combobox: a focused chip selects the tags mode.
type Handler struct {
	keys  KeyMap
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	return NewWithKeyMap(DefaultKeyMap())
}

// NewWithKeyMap creates a handler with custom bindings
func NewWithKeyMap(keys KeyMap) *Handler {
	b := modes.Bindings{
		Up: keys.Up, Down: keys.Down, PageUp: keys.PageUp, PageDown: keys.PageDown,
		Home: keys.Home, End: keys.End, Left: keys.Left, Right: keys.Right,
		Select: keys.Select, Escape: keys.Escape, Backspace: keys.Backspace,
		Delete: keys.Delete, Clear: keys.Clear, Toggle: keys.Toggle,
		Help: keys.Help, Cancel: keys.Cancel,
	}
	inputMode := modes.NewInputMode(b)

	h := &Handler{
		keys:  keys,
		modes: make(map[types.Mode]types.ModeHandler),
	}
	h.modes[types.ModeInput] = inputMode
	h.modes[types.ModeTags] = modes.NewTagsMode(b, inputMode)
	return h
}

// KeyMap returns the bindings, for the help line
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// ModeFor returns the mode a key press is handled in
func (h *Handler) ModeFor(ctx types.Context) types.Mode {
	if ctx.Multiple() && ctx.FocusedTag() != -1 {
		return types.ModeTags
	}
	return types.ModeInput
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.ModeFor(ctx)]
	if handler == nil {
		return nil
	}
	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}
