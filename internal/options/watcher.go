package options

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"treepick/internal/config"
	"treepick/internal/eventbus"
)

// debounceDelay coalesces the write bursts editors produce on save.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the option tree when the config file changes and publishes
// the new tree on the bus. The host applies it to the widget, which purges
// any selection entries the new tree no longer contains.
type Watcher struct {
	bus       eventbus.EventBus
	configSvc config.ConfigService
	path      string
	fsWatcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given config file.
func NewWatcher(bus eventbus.EventBus, configSvc config.ConfigService, path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files on save and
	// the watch would otherwise die with the old inode.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		bus:       bus,
		configSvc: configSvc,
		path:      path,
		fsWatcher: fsWatcher,
	}, nil
}

// Start begins watching until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	var debounce *time.Timer
	reload := func() {
		tree, err := Load(w.configSvc, w.path)
		if err != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "reloading options", Err: err})
			return
		}
		log.Printf("Options reloaded from %s (%d top-level)", w.path, len(tree))
		w.bus.Publish(eventbus.OptionsReloadedEvent{Options: tree})
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, reload)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Options watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
