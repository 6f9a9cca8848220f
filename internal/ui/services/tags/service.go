package tags

import (
	"combogrip/internal/domain"
	"combogrip/internal/ui/logic"
	"combogrip/internal/ui/services/events"
)

// State holds the roving chip focus; -1 means the input has focus
type State struct {
	Focused int
}

// Service moves focus between selected-value chips
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a tag focus navigator with no chip focused
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Focused: -1},
		bus:   bus,
	}
}

// Focused returns the focused chip index
func (s *Service) Focused() int {
	return s.state.Focused
}

// Set focuses chip index and asks the view to move focus there
func (s *Service) Set(index int) {
	s.state.Focused = index
	s.bus.Publish(domain.TagFocusRequestedEvent{Index: index})
}

// Clear returns focus to the input if a chip had it
func (s *Service) Clear() bool {
	if s.state.Focused == -1 {
		return false
	}
	s.Set(-1)
	return true
}

// Clamp drops chip focus once the value no longer reaches the focused index
func (s *Service) Clamp(count int) bool {
	if s.state.Focused > count-1 {
		return s.Clear()
	}
	return false
}

// Target computes the chip a move would land on before skipping chips that
// cannot take focus
func Target(current int, dir domain.Direction, inputEmpty bool, count int) int {
	if current == -1 {
		if inputEmpty && dir == domain.DirectionPrevious {
			return count - 1
		}
		return -1
	}
	next := current + dir.Step()
	if next < 0 || next >= count {
		return -1
	}
	return next
}

// Move steps chip focus in dir and returns the new index
func (s *Service) Move(dir domain.Direction, inputEmpty bool, count int, focusable func(int) bool) int {
	if focusable == nil {
		focusable = func(int) bool { return true }
	}
	target := Target(s.state.Focused, dir, inputEmpty, count)
	next := logic.NextFocusable(target, count, dir, false, focusable)
	s.Set(next)
	return next
}
