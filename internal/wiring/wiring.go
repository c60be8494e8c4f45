// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sail/internal/adapters/config"
	_ "go.trai.ch/sail/internal/adapters/logger"
	_ "go.trai.ch/sail/internal/adapters/project"
	_ "go.trai.ch/sail/internal/adapters/runner"
	_ "go.trai.ch/sail/internal/adapters/shell"
	_ "go.trai.ch/sail/internal/adapters/source"
	_ "go.trai.ch/sail/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/sail/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/sail/internal/app"
)
