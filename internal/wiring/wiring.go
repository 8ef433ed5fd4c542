// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/graphcache/internal/adapters/config"
	_ "go.trai.ch/graphcache/internal/adapters/linear"
	_ "go.trai.ch/graphcache/internal/adapters/logger"
	_ "go.trai.ch/graphcache/internal/adapters/selection"
	_ "go.trai.ch/graphcache/internal/adapters/telemetry"
	_ "go.trai.ch/graphcache/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/graphcache/internal/app"
)
