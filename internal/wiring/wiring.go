// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gembom/internal/adapters/bundler"
	_ "go.trai.ch/gembom/internal/adapters/config"
	_ "go.trai.ch/gembom/internal/adapters/cyclonedx"
	_ "go.trai.ch/gembom/internal/adapters/fs"
	_ "go.trai.ch/gembom/internal/adapters/license"
	_ "go.trai.ch/gembom/internal/adapters/logger"
	_ "go.trai.ch/gembom/internal/adapters/nexus"
	_ "go.trai.ch/gembom/internal/adapters/report"
	_ "go.trai.ch/gembom/internal/adapters/rubygems"
	_ "go.trai.ch/gembom/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/gembom/internal/app"
)
