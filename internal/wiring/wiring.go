// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sassbundle/internal/adapters/appdirs"
	_ "go.trai.ch/sassbundle/internal/adapters/cas"
	_ "go.trai.ch/sassbundle/internal/adapters/config"
	_ "go.trai.ch/sassbundle/internal/adapters/dartsass"
	_ "go.trai.ch/sassbundle/internal/adapters/fs"
	_ "go.trai.ch/sassbundle/internal/adapters/logger"
	_ "go.trai.ch/sassbundle/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/sassbundle/internal/app"
)
