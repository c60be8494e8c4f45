package app

import (
	"go.trai.ch/sail/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App            *App
	Logger         ports.Logger
	ConfigResolver ports.ConfigResolver
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, resolver ports.ConfigResolver) *Components {
	return &Components{
		App:            app,
		Logger:         logger,
		ConfigResolver: resolver,
	}
}
