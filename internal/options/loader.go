// Package options loads the option tree the widget presents and keeps it
// fresh while the backing file changes on disk.
package options

import (
	"fmt"

	"treepick/internal/config"
	"treepick/internal/domain"
)

// Load reads the option tree from a config file.
func Load(configSvc config.ConfigService, path string) ([]domain.Option, error) {
	cfg, err := configSvc.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}
	return cfg.OptionTree(), nil
}
