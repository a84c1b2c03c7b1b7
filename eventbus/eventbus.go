package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

// EventHandler is a function that handles domain events.
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Delivery is synchronous
// on the publisher's goroutine: the session is single-actor and consumers
// must observe mutations in the order they happen.
type bus struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   int
}

// New creates a new event bus.
func New(logger *slog.Logger) EventBus {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &bus{
		logger:   logger,
		handlers: map[EventType][]subscription{},
	}
}

// Publish delivers an event to all subscribers of its type.
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub, event)
	}
}

func (b *bus) call(sub subscription, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(
				"event handler panic",
				slog.String("eventType", string(event.Type())),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	sub.handler(event)
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(
		b.handlers[eventType],
		subscription{id: id, handler: handler},
	)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
