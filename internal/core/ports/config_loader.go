package ports

import "github.com/rust-dev-tools/rust-semverver/internal/core/domain"

// ConfigLoader defines the interface for loading the tool settings.
type ConfigLoader interface {
	// Load reads the settings, falling back to defaults when no config file exists.
	Load() (*domain.Settings, error)
}
