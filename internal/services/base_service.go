package services

import (
	"inventory-service/pkg/eventbus"
)

// Publisher is the part of the event bus services depend on.
type Publisher interface {
	Publish(event eventbus.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(eventbus.Event) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
