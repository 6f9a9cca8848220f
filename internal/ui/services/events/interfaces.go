package events

import (
	"combogrip/internal/domain"
)

// EventBus is what services need to publish events. The application bus in
// internal/eventbus satisfies it.
type EventBus interface {
	Publish(event domain.DomainEvent)
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event domain.DomainEvent) {}
