package eventbus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"eventdeck/eventbus"
)

func TestPublishReachesSubscribers(t *testing.T) {
	bus := eventbus.New(nil)

	var messages []string
	bus.Subscribe(
		eventbus.EventNotification,
		func(event eventbus.DomainEvent) {
			messages = append(
				messages,
				event.(eventbus.NotificationEvent).Message,
			)
		},
	)

	bus.Publish(eventbus.NotificationEvent{Message: "hello"})
	bus.Publish(eventbus.NotificationEvent{Message: "world"})

	assert.Equal(t, []string{"hello", "world"}, messages)
}

func TestPublishFiltersByType(t *testing.T) {
	bus := eventbus.New(nil)

	calls := 0
	bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { calls++ },
	)

	bus.Publish(eventbus.EventsRefreshedEvent{Count: 3})

	assert.Equal(t, 0, calls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := eventbus.New(nil)

	calls := 0
	unsubscribe := bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { calls++ },
	)

	bus.Publish(eventbus.NotificationEvent{Message: "one"})
	unsubscribe()
	bus.Publish(eventbus.NotificationEvent{Message: "two"})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	bus := eventbus.New(nil)

	first := 0
	second := 0
	unsubscribe := bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { first++ },
	)
	bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { second++ },
	)

	unsubscribe()
	bus.Publish(eventbus.NotificationEvent{Message: "hello"})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := eventbus.New(nil)

	calls := 0
	bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { panic("boom") },
	)
	bus.Subscribe(
		eventbus.EventNotification,
		func(_ eventbus.DomainEvent) { calls++ },
	)

	bus.Publish(eventbus.NotificationEvent{Message: "hello"})

	assert.Equal(t, 1, calls)
}
