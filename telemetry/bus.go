package telemetry

//go:generate mockgen -destination=telemetrymock/mock_eventbus.go -package=telemetrymock github.com/zbonzo/CrimsonFall-sub000/telemetry EventBus

import (
	"fmt"
	"sync"
)

// Topic names the kind of Event published on the bus.
type Topic string

const (
	// RoundStarted fires once at the beginning of processRound, before
	// any action is resolved.
	RoundStarted Topic = "round.started"

	// RoundEnded fires once processRound has applied status-effect
	// ticks, cooldown decrements, and win-condition checks.
	RoundEnded Topic = "round.ended"

	// ActionResolved fires once per player or monster action, after the
	// action processor has produced an ActionResult.
	ActionResolved Topic = "action.resolved"

	// EntityDied fires the first time an entity's HP reaches zero.
	EntityDied Topic = "entity.died"
)

// Event is anything published on the bus. Payload carries the
// topic-specific data (e.g. a RoundStartedPayload or ActionResolvedPayload);
// the engine package defines the concrete payload types.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives events published to a topic it subscribed to.
type Handler func(Event)

// EventBus is the seam the engine publishes round-lifecycle diagnostics
// through. Production code uses *Bus; tests inject a mock to assert
// which events a round produced without wiring a real subscriber.
type EventBus interface {
	Subscribe(topic Topic, handler Handler) uint64
	Unsubscribe(id uint64) error
	Publish(event Event)
	Clear()
}

// Bus is a synchronous, mutex-guarded event bus. Publish calls every
// matching handler in subscription order on the caller's goroutine;
// there is no queue and no concurrency.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]subscription
	nextID   uint64
}

type subscription struct {
	id      uint64
	handler Handler
}

var _ EventBus = (*Bus)(nil)

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Topic][]subscription)}
}

// Subscribe registers handler for topic and returns a subscription ID
// usable with Unsubscribe.
func (b *Bus) Subscribe(topic Topic, handler Handler) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription by ID. It returns an error if no
// such subscription exists.
func (b *Bus) Unsubscribe(id uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subs := range b.handlers {
		for i, s := range subs {
			if s.id == id {
				b.handlers[topic] = append(subs[:i], subs[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("telemetry: subscription %d not found", id)
}

// Publish calls every handler subscribed to event.Topic, in
// subscription order. Handlers must not panic; Publish does not
// recover.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Topic]))
	copy(subs, b.handlers[event.Topic])
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Clear removes every subscription. Intended for test teardown.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[Topic][]subscription)
}
