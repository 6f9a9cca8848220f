package selection

import (
	"combogrip/internal/diag"
	"combogrip/internal/domain"
	"combogrip/internal/ui/services/events"
)

// Service handles the single/multi value reducer
type Service[V comparable] struct {
	state    *State[V]
	bus      events.EventBus
	multiple bool
	equal    func(option, value V) bool
	labelFn  func(V) string
	reporter diag.Reporter
}

// NewService creates a selection service. A nil equal compares with ==.
func NewService[V comparable](bus events.EventBus, multiple bool, equal func(option, value V) bool, reporter diag.Reporter) *Service[V] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if equal == nil {
		equal = func(option, value V) bool { return option == value }
	}
	if reporter == nil {
		reporter = diag.Nop{}
	}
	return &Service[V]{
		state:    &State[V]{},
		bus:      bus,
		multiple: multiple,
		equal:    equal,
		reporter: reporter,
	}
}

// SetLabelFunction sets the label used in diagnostics
func (s *Service[V]) SetLabelFunction(fn func(V) string) {
	s.labelFn = fn
}

// Multiple reports whether the service holds a list of values
func (s *Service[V]) Multiple() bool {
	return s.multiple
}

// Value returns a copy of the committed value
func (s *Service[V]) Value() []V {
	out := make([]V, len(s.state.Value))
	copy(out, s.state.Value)
	return out
}

// Single returns the value in single mode
func (s *Service[V]) Single() (V, bool) {
	if len(s.state.Value) == 0 {
		var zero V
		return zero, false
	}
	return s.state.Value[0], true
}

// Version changes whenever the value does
func (s *Service[V]) Version() int {
	return s.state.Version
}

// Len returns the number of selected values
func (s *Service[V]) Len() int {
	return len(s.state.Value)
}

// IsSelected reports whether option matches any selected value
func (s *Service[V]) IsSelected(option V) bool {
	return s.indexOf(option) != -1
}

func (s *Service[V]) indexOf(option V) int {
	for i, v := range s.state.Value {
		if s.equal(option, v) {
			return i
		}
	}
	return -1
}

// Equal exposes the configured equality predicate
func (s *Service[V]) Equal(option, value V) bool {
	return s.equal(option, value)
}

// Unchanged reports whether newValue holds the same elements as the current
// value, compared with ==
func (s *Service[V]) Unchanged(newValue []V) bool {
	if len(newValue) != len(s.state.Value) {
		return false
	}
	for i := range newValue {
		if newValue[i] != s.state.Value[i] {
			return false
		}
	}
	return true
}

// Commit stores newValue and publishes a change. It does nothing and returns
// false when the value is unchanged.
func (s *Service[V]) Commit(newValue []V, reason domain.ChangeReason, details domain.ChangeDetails[V]) bool {
	if !s.multiple && len(newValue) > 1 {
		newValue = newValue[:1]
	}
	if s.Unchanged(newValue) {
		return false
	}

	stored := make([]V, len(newValue))
	copy(stored, newValue)
	s.state.Value = stored
	s.state.Version++

	s.bus.Publish(domain.ValueChangedEvent[V]{
		Value:   s.Value(),
		Reason:  reason,
		Details: details,
	})
	return true
}

// Replace stores a value supplied by the host without publishing a change
func (s *Service[V]) Replace(value []V) {
	if s.Unchanged(value) {
		return
	}
	if !s.multiple && len(value) > 1 {
		value = value[:1]
	}
	stored := make([]V, len(value))
	copy(stored, value)
	s.state.Value = stored
	s.state.Version++
}

// Toggle computes the value that selecting option would produce. In multiple
// mode re-selecting an option from the list removes it; free-solo entries
// are always appended.
func (s *Service[V]) Toggle(option V, origin domain.Origin) ([]V, domain.ChangeReason) {
	if !s.multiple {
		return []V{option}, domain.ReasonSelectOption
	}

	matches := 0
	for _, v := range s.state.Value {
		if s.equal(option, v) {
			matches++
		}
	}
	if matches > 1 {
		s.reporter.Report(diag.AmbiguousEquality,
			"the equality predicate matched %d selected values for option %s; expected at most one",
			matches, s.describe(option))
	}

	newValue := s.Value()
	itemIndex := s.indexOf(option)
	if itemIndex == -1 {
		return append(newValue, option), domain.ReasonSelectOption
	}
	if origin == domain.OriginFreeSolo {
		return newValue, domain.ReasonSelectOption
	}
	return append(newValue[:itemIndex], newValue[itemIndex+1:]...), domain.ReasonRemoveOption
}

// RemoveAt drops the value at index with reason removeOption
func (s *Service[V]) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.state.Value) {
		return false
	}
	removed := s.state.Value[index]
	newValue := s.Value()
	newValue = append(newValue[:index], newValue[index+1:]...)
	return s.Commit(newValue, domain.ReasonRemoveOption, domain.ChangeDetails[V]{Option: removed, HasOption: true})
}

// Clear empties the value with reason clear
func (s *Service[V]) Clear() bool {
	return s.Commit(nil, domain.ReasonClear, domain.ChangeDetails[V]{})
}

func (s *Service[V]) describe(option V) string {
	if s.labelFn != nil {
		return "\"" + s.labelFn(option) + "\""
	}
	return "value"
}
