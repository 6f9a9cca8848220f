package openstate

import (
	"combogrip/internal/domain"
	"combogrip/internal/ui/services/events"
)

// Service owns the open/closed flag and the input text
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a closed, pristine, unfocused state machine
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Pristine:   true,
			FirstFocus: true,
		},
		bus: bus,
	}
}

// State returns a snapshot of the current state
func (s *Service) State() State {
	return *s.state
}

// IsOpen reports whether the list is open
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// InputValue returns the input text
func (s *Service) InputValue() string {
	return s.state.InputValue
}

// Pristine reports whether the input is untouched since the list opened
func (s *Service) Pristine() bool {
	return s.state.Pristine
}

// Focused reports whether the input has focus
func (s *Service) Focused() bool {
	return s.state.Focused
}

// Open opens the list. It returns false when already open.
func (s *Service) Open() bool {
	if s.state.Open {
		return false
	}
	s.state.Open = true
	s.state.Pristine = true
	s.bus.Publish(domain.OpenedEvent{})
	return true
}

// Close closes the list. It returns false when already closed.
func (s *Service) Close(reason domain.CloseReason) bool {
	if !s.state.Open {
		return false
	}
	s.state.Open = false
	s.bus.Publish(domain.ClosedEvent{Reason: reason})
	return true
}

// Input records text typed by the user. Unchanged text is not reported.
func (s *Service) Input(text string) bool {
	if s.state.InputValue == text {
		return false
	}
	s.state.InputValue = text
	s.state.Pristine = false
	s.bus.Publish(domain.InputChangedEvent{Text: text, Reason: domain.InputReasonInput})
	return true
}

// ResetInput ties the input text back to the value after a commit.
// optionSelected tells whether the commit added or set a value; when it did
// not and clearOnBlur is off the typed text is kept.
func (s *Service) ResetInput(text string, optionSelected, clearOnBlur bool) bool {
	if !optionSelected && !clearOnBlur {
		return false
	}
	if s.state.InputValue == text {
		return false
	}
	s.state.InputValue = text
	s.bus.Publish(domain.InputChangedEvent{Text: text, Reason: domain.InputReasonReset})
	return true
}

// ClearInput empties the input for the clear button or Escape
func (s *Service) ClearInput() {
	s.state.IgnoreFocus = true
	s.state.InputValue = ""
	s.bus.Publish(domain.InputChangedEvent{Text: "", Reason: domain.InputReasonClear})
}

// SetInputValue replaces the text on behalf of the host without a
// notification
func (s *Service) SetInputValue(text string) {
	s.state.InputValue = text
}

// Focus marks the input focused. It reports whether open-on-focus may run.
func (s *Service) Focus() bool {
	s.state.Focused = true
	return !s.state.IgnoreFocus
}

// Blur marks the input unfocused and rearms first-focus handling
func (s *Service) Blur() {
	s.state.Focused = false
	s.state.FirstFocus = true
	s.state.IgnoreFocus = false
}

// ConsumeFirstFocus reports whether this is the first click since focus and
// clears the flag
func (s *Service) ConsumeFirstFocus() bool {
	first := s.state.FirstFocus
	s.state.FirstFocus = false
	return first
}
