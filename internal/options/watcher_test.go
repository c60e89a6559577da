package options

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"treepick/internal/config"
	"treepick/internal/eventbus"
)

func TestWatcherPublishesReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, []config.OptionEntry{{Value: "a", Label: "A"}})

	bus := eventbus.New()
	reloads := make(chan eventbus.OptionsReloadedEvent, 4)
	bus.Subscribe(eventbus.EventOptionsReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OptionsReloadedEvent); ok {
			reloads <- event
		}
	})

	watcher, err := NewWatcher(bus, config.NewConfigService(), path)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	// Give the watch a moment to establish before rewriting the file.
	time.Sleep(50 * time.Millisecond)
	writeConfig(t, path, []config.OptionEntry{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
	})

	select {
	case event := <-reloads:
		require.Len(t, event.Options, 2)
		require.Equal(t, "b", event.Options[1].Value)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload event after file write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, []config.OptionEntry{{Value: "a", Label: "A"}})

	bus := eventbus.New()
	reloads := make(chan eventbus.OptionsReloadedEvent, 4)
	bus.Subscribe(eventbus.EventOptionsReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OptionsReloadedEvent); ok {
			reloads <- event
		}
	})

	watcher, err := NewWatcher(bus, config.NewConfigService(), path)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	writeConfig(t, filepath.Join(dir, "unrelated.toml"), nil)

	select {
	case <-reloads:
		t.Fatal("reload fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(eventbus.New(), config.NewConfigService(),
		filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.Error(t, err)
}
