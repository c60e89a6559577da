package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	bus := New()

	var got []DomainEvent
	bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		got = append(got, e)
	})

	bus.Publish(SelectionChangedEvent{Selected: []string{"a"}})
	require.Len(t, got, 1)
	require.Equal(t, SelectionChangedEvent{Selected: []string{"a"}}, got[0])
}

func TestPublishIsSynchronous(t *testing.T) {
	bus := New()

	delivered := false
	bus.Subscribe(EventDropdownClosed, func(DomainEvent) { delivered = true })

	bus.Publish(DropdownClosedEvent{})
	require.True(t, delivered, "handlers run before Publish returns")
}

func TestSubscribeFiltersEventType(t *testing.T) {
	bus := New()

	calls := 0
	bus.Subscribe(EventDropdownOpened, func(DomainEvent) { calls++ })

	bus.Publish(DropdownClosedEvent{})
	require.Zero(t, calls)

	bus.Publish(DropdownOpenedEvent{})
	require.Equal(t, 1, calls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	calls := 0
	unsub := bus.Subscribe(EventConfigSaved, func(DomainEvent) { calls++ })

	bus.Publish(ConfigSavedEvent{})
	unsub()
	bus.Publish(ConfigSavedEvent{})

	require.Equal(t, 1, calls)
}

func TestUnsubscribeTwiceIsHarmless(t *testing.T) {
	bus := New()

	calls := 0
	unsubA := bus.Subscribe(EventConfigSaved, func(DomainEvent) { calls++ })
	bus.Subscribe(EventConfigSaved, func(DomainEvent) { calls++ })

	unsubA()
	unsubA()

	bus.Publish(ConfigSavedEvent{})
	require.Equal(t, 1, calls, "the second subscriber must survive")
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	bus := New()

	reached := false
	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventError, func(DomainEvent) { reached = true })

	bus.Publish(ErrorEvent{Message: "x"})
	require.True(t, reached)
}
