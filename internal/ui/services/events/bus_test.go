package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pingEvent struct{ N int }
type otherEvent struct{}

func TestBusRoutesByTypeName(t *testing.T) {
	bus := NewBus()

	var got []pingEvent
	bus.Subscribe("events.pingEvent", func(e interface{}) {
		got = append(got, e.(pingEvent))
	})

	bus.Publish(pingEvent{N: 1})
	bus.Publish(otherEvent{})
	bus.Publish(pingEvent{N: 2})

	require.Equal(t, []pingEvent{{N: 1}, {N: 2}}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsub := bus.Subscribe("events.pingEvent", func(interface{}) { calls++ })
	keep := 0
	bus.Subscribe("events.pingEvent", func(interface{}) { keep++ })

	bus.Publish(pingEvent{})
	unsub()
	unsub() // second call is a no-op
	bus.Publish(pingEvent{})

	require.Equal(t, 1, calls)
	require.Equal(t, 2, keep)
}

func TestBusDispatchOrderIsSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe("events.pingEvent", func(interface{}) { order = append(order, 1) })
	bus.Subscribe("events.pingEvent", func(interface{}) { order = append(order, 2) })

	bus.Publish(pingEvent{})
	require.Equal(t, []int{1, 2}, order)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}

	unsub := bus.Subscribe("anything", func(interface{}) { t.Fatal("must never fire") })
	bus.Publish(pingEvent{})
	unsub()
}
