// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/aotc/internal/adapters/archive"
	_ "go.trai.ch/aotc/internal/adapters/classpath"
	_ "go.trai.ch/aotc/internal/adapters/config"
	_ "go.trai.ch/aotc/internal/adapters/fs"
	_ "go.trai.ch/aotc/internal/adapters/logger"
	_ "go.trai.ch/aotc/internal/adapters/output"
	_ "go.trai.ch/aotc/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/aotc/internal/app"
	_ "go.trai.ch/aotc/internal/engine/configure"
)
