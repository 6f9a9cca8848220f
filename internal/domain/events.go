package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventValueChanged          EventType = "ValueChanged"
	EventInputChanged          EventType = "InputChanged"
	EventHighlightChanged      EventType = "HighlightChanged"
	EventOpened                EventType = "Opened"
	EventClosed                EventType = "Closed"
	EventActiveOptionChanged   EventType = "ActiveOptionChanged"
	EventScrollRequested       EventType = "ScrollRequested"
	EventInputDisplayRequested EventType = "InputDisplayRequested"
	EventTagFocusRequested     EventType = "TagFocusRequested"
	EventFocusRequested        EventType = "FocusRequested"
	EventBlurRequested         EventType = "BlurRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ChangeDetails carries the option that caused a value change, if any
type ChangeDetails[V any] struct {
	Option    V
	HasOption bool
}

// ValueChangedEvent is emitted after a committed value transition
type ValueChangedEvent[V any] struct {
	Value   []V
	Reason  ChangeReason
	Details ChangeDetails[V]
}

func (e ValueChangedEvent[V]) Type() EventType { return EventValueChanged }

// InputChangedEvent is emitted when the input text changes
type InputChangedEvent struct {
	Text   string
	Reason InputChangeReason
}

func (e InputChangedEvent) Type() EventType { return EventInputChanged }

// HighlightChangedEvent is emitted whenever the highlighted index is set.
// HasOption is false when nothing is highlighted.
type HighlightChangedEvent[V any] struct {
	Index     int
	Option    V
	HasOption bool
	Reason    HighlightReason
}

func (e HighlightChangedEvent[V]) Type() EventType { return EventHighlightChanged }

// OpenedEvent is emitted when the option list opens
type OpenedEvent struct{}

func (e OpenedEvent) Type() EventType { return EventOpened }

// ClosedEvent is emitted when the option list closes
type ClosedEvent struct {
	Reason CloseReason
}

func (e ClosedEvent) Type() EventType { return EventClosed }

// ActiveOptionChangedEvent updates the accessibility marker linking the input
// to the highlighted option. ID is empty when nothing is highlighted.
type ActiveOptionChangedEvent struct {
	Index int
	ID    string
}

func (e ActiveOptionChangedEvent) Type() EventType { return EventActiveOptionChanged }

// ScrollRequestedEvent asks the view to bring an option into view.
// Index -1 means scroll back to the top.
type ScrollRequestedEvent struct {
	Index  int
	Reason HighlightReason
}

func (e ScrollRequestedEvent) Type() EventType { return EventScrollRequested }

// InputDisplayRequestedEvent asks the view to show Text in the input and
// select the rune range [SelectionStart, SelectionEnd). An empty range means
// the caret sits at SelectionStart.
type InputDisplayRequestedEvent struct {
	Text           string
	SelectionStart int
	SelectionEnd   int
}

func (e InputDisplayRequestedEvent) Type() EventType { return EventInputDisplayRequested }

// TagFocusRequestedEvent moves focus to a chip, or back to the input for -1
type TagFocusRequestedEvent struct {
	Index int
}

func (e TagFocusRequestedEvent) Type() EventType { return EventTagFocusRequested }

// FocusRequestedEvent asks the view to give the input focus again
type FocusRequestedEvent struct{}

func (e FocusRequestedEvent) Type() EventType { return EventFocusRequested }

// BlurRequestedEvent asks the view to move focus away from the input
type BlurRequestedEvent struct{}

func (e BlurRequestedEvent) Type() EventType { return EventBlurRequested }
