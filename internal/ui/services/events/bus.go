package events

import (
	"combogrip/internal/domain"
)

// Recorder is an EventBus that keeps every published event in order
type Recorder struct {
	Events []domain.DomainEvent
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event
func (r *Recorder) Publish(event domain.DomainEvent) {
	r.Events = append(r.Events, event)
}

// Types returns the types of the recorded events
func (r *Recorder) Types() []domain.EventType {
	out := make([]domain.EventType, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type()
	}
	return out
}

// OfType returns the recorded events of one type
func (r *Recorder) OfType(eventType domain.EventType) []domain.DomainEvent {
	var out []domain.DomainEvent
	for _, e := range r.Events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	r.Events = nil
}
