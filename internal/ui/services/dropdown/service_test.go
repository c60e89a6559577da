package dropdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treepick/internal/domain"
	"treepick/internal/eventbus"
	"treepick/internal/ui/services/events"
	"treepick/internal/ui/services/selection"
)

type fixture struct {
	bus       *events.Bus
	domainBus eventbus.EventBus
	sel       *selection.Service
	dd        *Service
	emitted   [][]string
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	f := &fixture{
		bus:       events.NewBus(),
		domainBus: eventbus.New(),
	}
	f.sel = selection.NewService(f.bus)
	f.sel.SetOptions([]domain.Option{
		{Value: "a", Label: "A", Children: []domain.Option{
			{Value: "a1", Label: "A1"},
			{Value: "a2", Label: "A2"},
		}},
	})

	f.dd = NewService(f.bus, f.domainBus, opts)
	f.dd.SetSelectionFunction(func() selection.Set { return f.sel.Selected() })
	f.dd.Attach()

	f.domainBus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		event := e.(eventbus.SelectionChangedEvent)
		f.emitted = append(f.emitted, event.Selected)
	})

	return f
}

func TestChangeOnCloseEmitsExactlyOnce(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.dd.ToggleOpen()
	require.True(t, f.dd.IsOpen())

	f.sel.Toggle("a1", true)
	require.Empty(t, f.emitted, "no notification at toggle time")
	require.True(t, f.dd.HasChanges())

	f.dd.ToggleOpen()
	require.False(t, f.dd.IsOpen())
	require.Len(t, f.emitted, 1)
	require.Equal(t, []string{"a1"}, f.emitted[0])
	require.False(t, f.dd.HasChanges())

	// Reopening and closing without touching anything emits nothing more.
	f.dd.ToggleOpen()
	f.dd.ToggleOpen()
	require.Len(t, f.emitted, 1)
}

func TestImmediateModeEmitsPerMutation(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: false})

	f.sel.Toggle("a1", true)
	f.sel.Toggle("a2", true)

	require.Len(t, f.emitted, 2)
	require.Equal(t, []string{"a1"}, f.emitted[0])
	require.Equal(t, []string{"a1", "a2", "a"}, f.emitted[1])
	require.False(t, f.dd.HasChanges())
}

func TestOutsidePressClosesAndEmits(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.dd.ToggleOpen()
	f.sel.Toggle("a1", true)

	f.bus.Publish(GlobalPressEvent{Inside: false, X: 70, Y: 20})
	require.False(t, f.dd.IsOpen())
	require.Len(t, f.emitted, 1)
}

func TestInsidePressIsIgnoredByController(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.dd.ToggleOpen()
	f.bus.Publish(GlobalPressEvent{Inside: true, X: 2, Y: 3})
	require.True(t, f.dd.IsOpen())
}

func TestOutsidePressWhileClosedIsNoop(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.bus.Publish(GlobalPressEvent{Inside: false})
	require.False(t, f.dd.IsOpen())
	require.Empty(t, f.emitted)
}

func TestConfirmForcesClose(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true, ChangeBtn: true})

	f.dd.ToggleOpen()
	f.sel.Toggle("a", true)
	f.dd.Confirm()

	require.False(t, f.dd.IsOpen())
	require.Len(t, f.emitted, 1)
	require.Equal(t, []string{"a", "a1", "a2"}, f.emitted[0])
}

func TestCloseWithoutChangesEmitsNothing(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.dd.ToggleOpen()
	f.dd.Close()
	require.Empty(t, f.emitted)
}

func TestDetachReleasesGlobalListener(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: true})

	f.dd.ToggleOpen()
	f.dd.Detach()

	// The press stream no longer reaches the controller.
	f.bus.Publish(GlobalPressEvent{Inside: false})
	require.True(t, f.dd.IsOpen())

	// Detach twice is harmless; so is re-attaching.
	f.dd.Detach()
	f.dd.Attach()
	f.bus.Publish(GlobalPressEvent{Inside: false})
	require.False(t, f.dd.IsOpen())
}

func TestAttachIsIdempotent(t *testing.T) {
	f := newFixture(t, Options{ChangeOnClose: false})

	f.dd.Attach()
	f.dd.Attach()
	f.sel.Toggle("a1", true)

	// A doubled subscription would emit twice per mutation.
	require.Len(t, f.emitted, 1)
}
