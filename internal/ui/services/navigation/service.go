package navigation

import (
	"fmt"

	"combogrip/internal/domain"
	"combogrip/internal/ui/logic"
	"combogrip/internal/ui/services/events"
)

// NextIndex computes the raw target of a move over a list of length options,
// before disabled options are skipped
func NextIndex(current, length int, diff Diff, cfg Config) int {
	maxIndex := length - 1

	switch diff.kind {
	case diffReset:
		if cfg.AutoHighlight {
			return 0
		}
		return -1
	case diffStart:
		return 0
	case diffEnd:
		return maxIndex
	}

	newIndex := current + diff.step
	magnitude := diff.step
	if magnitude < 0 {
		magnitude = -magnitude
	}

	if newIndex < 0 {
		if newIndex == -1 && cfg.IncludeInputInList {
			return -1
		}
		// from the input itself an upward step still lands on the last option
		if (cfg.DisableListWrap && current != -1) || magnitude > 1 {
			return 0
		}
		return maxIndex
	}

	if newIndex > maxIndex {
		if newIndex == maxIndex+1 && cfg.IncludeInputInList {
			return -1
		}
		if cfg.DisableListWrap || magnitude > 1 {
			return maxIndex
		}
		return 0
	}

	return newIndex
}

// Service owns the highlighted index. Every write goes through Set so the
// active-option marker and listeners stay in step.
type Service[V any] struct {
	state       *State
	bus         events.EventBus
	id          string
	cfg         Config
	optionsFn   func() []V
	focusableFn func(int) bool
}

// NewService creates a navigation service. id prefixes the active-option
// marker of each option.
func NewService[V any](bus events.EventBus, id string, cfg Config) *Service[V] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service[V]{
		state: &State{Index: -1},
		bus:   bus,
		id:    id,
		cfg:   cfg,
	}
}

// SetQueryFunction sets the function returning the current filtered options
func (s *Service[V]) SetQueryFunction(fn func() []V) {
	s.optionsFn = fn
}

// SetFocusableFunction sets the per-index focusability probe
func (s *Service[V]) SetFocusableFunction(fn func(int) bool) {
	s.focusableFn = fn
}

// SetConfig replaces the wrap rules
func (s *Service[V]) SetConfig(cfg Config) {
	s.cfg = cfg
}

// Index returns the highlighted index
func (s *Service[V]) Index() int {
	return s.state.Index
}

// OptionID returns the active-option marker for index
func (s *Service[V]) OptionID(index int) string {
	if index < 0 {
		return ""
	}
	return fmt.Sprintf("%s-option-%d", s.id, index)
}

func (s *Service[V]) options() []V {
	if s.optionsFn == nil {
		return nil
	}
	return s.optionsFn()
}

func (s *Service[V]) focusable(index int) bool {
	if s.focusableFn == nil {
		return true
	}
	return s.focusableFn(index)
}

// Set highlights index. Out-of-range indices clear the highlight.
func (s *Service[V]) Set(index int, reason domain.HighlightReason) {
	options := s.options()
	if index < -1 || index >= len(options) {
		index = -1
	}
	s.state.Index = index

	s.bus.Publish(domain.ActiveOptionChangedEvent{Index: index, ID: s.OptionID(index)})

	highlight := domain.HighlightChangedEvent[V]{Index: index, Reason: reason}
	if index != -1 {
		highlight.Option = options[index]
		highlight.HasOption = true
	}
	s.bus.Publish(highlight)

	if index == -1 || (reason != domain.HighlightMouse && reason != domain.HighlightTouch) {
		s.bus.Publish(domain.ScrollRequestedEvent{Index: index, Reason: reason})
	}
}

// Move applies diff, skips options that cannot take focus in direction dir
// and highlights the result. It returns the new index.
func (s *Service[V]) Move(diff Diff, dir domain.Direction, reason domain.HighlightReason) int {
	length := len(s.options())
	target := NextIndex(s.state.Index, length, diff, s.cfg)
	next := logic.NextFocusable(target, length, dir, true, s.focusable)
	s.Set(next, reason)
	return next
}

// Sync re-aligns the highlight after the filtered options, input text or
// value changed
func (s *Service[V]) Sync(in SyncInput[V]) {
	if index := s.previousHighlightIndex(in); index != -1 {
		// same option at a new position
		s.state.Index = index
		s.bus.Publish(domain.ActiveOptionChangedEvent{Index: index, ID: s.OptionID(index)})
		return
	}

	if len(in.Filtered) == 0 || len(in.Value) == 0 {
		s.Move(Reset, domain.DirectionNext, domain.HighlightAuto)
		return
	}
	valueItem := in.Value[0]

	current := s.state.Index
	if in.Multiple && current >= 0 && current < len(in.Filtered) {
		for _, v := range in.Value {
			if in.Equal(in.Filtered[current], v) {
				return
			}
		}
	}

	for i, option := range in.Filtered {
		if in.Equal(option, valueItem) {
			s.Set(i, domain.HighlightAuto)
			return
		}
	}
	s.Move(Reset, domain.DirectionNext, domain.HighlightAuto)
}

// previousHighlightIndex finds the previously highlighted option in the new
// list by label. It only applies when the list length changed while the
// input text and the value labels stayed the same.
func (s *Service[V]) previousHighlightIndex(in SyncInput[V]) int {
	current := s.state.Index
	if current == -1 || in.PrevFiltered == nil || len(in.PrevFiltered) == len(in.Filtered) {
		return -1
	}
	if in.PrevInputValue != in.InputValue || !sameLabels(in.PrevValue, in.Value, in.Label) {
		return -1
	}
	if current < 0 || current >= len(in.PrevFiltered) {
		return -1
	}

	label := in.Label(in.PrevFiltered[current])
	for i, option := range in.Filtered {
		if in.Label(option) == label {
			return i
		}
	}
	return -1
}

func sameLabels[V any](a, b []V, label func(V) string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if label(a[i]) != label(b[i]) {
			return false
		}
	}
	return true
}
