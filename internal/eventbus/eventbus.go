package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"combogrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventValueChanged          = domain.EventValueChanged
	EventInputChanged          = domain.EventInputChanged
	EventHighlightChanged      = domain.EventHighlightChanged
	EventOpened                = domain.EventOpened
	EventClosed                = domain.EventClosed
	EventActiveOptionChanged   = domain.EventActiveOptionChanged
	EventScrollRequested       = domain.EventScrollRequested
	EventInputDisplayRequested = domain.EventInputDisplayRequested
	EventTagFocusRequested     = domain.EventTagFocusRequested
	EventFocusRequested        = domain.EventFocusRequested
	EventBlurRequested         = domain.EventBlurRequested
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously on the publisher's goroutine, in
// subscription order. Handlers may publish or call back into the engine; the
// nested delivery completes before the outer Publish returns.
type bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscription
	all      []subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type, then to the
// catch-all subscribers
func (b *bus) Publish(event DomainEvent) {
	if event == nil {
		return
	}

	b.mu.RLock()
	typed := b.handlers[event.Type()]
	targets := make([]subscription, 0, len(typed)+len(b.all))
	targets = append(targets, typed...)
	targets = append(targets, b.all...)
	b.mu.RUnlock()

	for _, sub := range targets {
		b.deliver(sub.handler, event)
	}
}

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], id)
	}
}

// SubscribeAll subscribes to every event
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

// remove returns a fresh slice so in-flight deliveries keep their snapshot
func remove(subs []subscription, id uint64) []subscription {
	out := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
