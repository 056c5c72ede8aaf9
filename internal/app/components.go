package app

import (
	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the public API.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, log ports.Logger, cfg *domain.Config) *Components {
	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
	}
}
