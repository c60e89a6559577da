package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/config"
	"treepick/internal/eventbus"
	"treepick/internal/options"
	"treepick/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file with the option tree")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("treepick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, &configPath)

	// Host-side change subscription: this is where an embedding application
	// would consume the widget's change notifications.
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection changed: %v", event.Selected)
		}
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Forward domain events into the UI loop
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventOptionsReloaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Watch the config file so option tree edits show up live
	if watcher, err := options.NewWatcher(bus, configSvc, configPath); err != nil {
		log.Printf("Could not watch %s: %v", configPath, err)
	} else {
		defer watcher.Close()
		go watcher.Start(ctx)
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}

// loadOrCreateConfig loads the config file or writes a starter one with a
// sample option tree so the demo has something to show.
func loadOrCreateConfig(configSvc config.ConfigService, configPath *string) *config.Config {
	if *configPath == "" {
		*configPath = configSvc.Path()
	} else {
		if abs, err := filepath.Abs(*configPath); err == nil {
			*configPath = abs
		}
	}

	if _, err := os.Stat(*configPath); err == nil {
		if cfg, err := configSvc.LoadFromPath(*configPath); err == nil {
			log.Printf("Loaded config from %s", *configPath)
			return cfg
		} else {
			log.Printf("Error loading config: %v", err)
		}
	}

	log.Printf("Creating new config at %s", *configPath)
	cfg := config.DefaultConfig()
	cfg.Options = sampleOptions()

	if err := configSvc.SaveToPath(cfg, *configPath); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return cfg
}

// sampleOptions is the starter tree written into a fresh config.
func sampleOptions() []config.OptionEntry {
	return []config.OptionEntry{
		{Value: "fruits", Label: "Fruits", Children: []config.OptionEntry{
			{Value: "apple", Label: "Apple"},
			{Value: "pear", Label: "Pear"},
			{Value: "plum", Label: "Plum"},
		}},
		{Value: "vegetables", Label: "Vegetables", Children: []config.OptionEntry{
			{Value: "carrot", Label: "Carrot"},
			{Value: "leek", Label: "Leek"},
		}},
		{Value: "other", Label: "Other"},
	}
}
