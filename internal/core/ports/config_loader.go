package ports

import "go.trai.ch/sassbundle/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
type ConfigLoader interface {
	// Load searches upward from cwd for the config file, applies environment
	// overrides and returns the result. A missing file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
