package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"treepick/internal/domain"
	"treepick/internal/eventbus"
)

// OptionEntry is the on-disk form of one option, children nested one level.
type OptionEntry struct {
	Value    string        `toml:"value"`
	Label    string        `toml:"label"`
	Children []OptionEntry `toml:"children,omitempty"`
}

// Config represents the widget configuration
type Config struct {
	ChangeOnClose   bool          `toml:"change_on_close"`
	PlaceholderText string        `toml:"placeholder_text"`
	EmptyText       string        `toml:"empty_text"`
	ChangeBtn       bool          `toml:"change_btn"`
	SelectAllBtn    bool          `toml:"select_all_btn"`
	Selected        string        `toml:"selected,omitempty"` // initial selection, comma-separated
	Options         []OptionEntry `toml:"options,omitempty"`
}

// OptionTree converts the on-disk entries to the domain model.
func (c *Config) OptionTree() []domain.Option {
	return toOptions(c.Options)
}

func toOptions(entries []OptionEntry) []domain.Option {
	var tree []domain.Option
	for _, e := range entries {
		opt := domain.Option{Value: e.Value, Label: e.Label}
		for _, child := range e.Children {
			// The tree is two levels deep; grandchildren are dropped.
			opt.Children = append(opt.Children, domain.Option{Value: child.Value, Label: child.Label})
		}
		tree = append(tree, opt)
	}
	return tree
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	treepickDir := filepath.Join(configDir, "treepick")
	os.MkdirAll(treepickDir, 0755)

	return &configService{
		filePath: filepath.Join(treepickDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the config file path in use.
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ChangeOnClose:   true,
		PlaceholderText: "Select options…",
		EmptyText:       "No options available",
		ChangeBtn:       true,
		SelectAllBtn:    true,
	}
}
