package engine

import (
	"combogrip/internal/ui/services/groups"
)

// State is a read-only snapshot of the engine
type State[V comparable] struct {
	Value      []V
	InputValue string
	// Open is the open flag; PopupOpen is false while read-only
	Open      bool
	PopupOpen bool
	// ListboxAvailable is true when the open list has something to show
	ListboxAvailable bool
	Expanded         bool

	HighlightedIndex int
	ActiveOptionID   string
	FocusedTag       int
	Focused          bool
	Pristine         bool

	FilteredOptions []V
	// GroupedOptions is nil unless GroupBy is set
	GroupedOptions []groups.Bucket[V, string]

	// Dirty is true when there is a value or free-solo text to clear
	Dirty    bool
	Multiple bool
	Disabled bool
	ReadOnly bool
}

// Single returns the value in single mode
func (s State[V]) Single() (V, bool) {
	if len(s.Value) == 0 {
		var zero V
		return zero, false
	}
	return s.Value[0], true
}
