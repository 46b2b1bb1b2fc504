// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/cargo"
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/config"
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/driver"
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/registry"
	_ "github.com/rust-dev-tools/rust-semverver/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/rust-dev-tools/rust-semverver/internal/app"
	_ "github.com/rust-dev-tools/rust-semverver/internal/engine/orchestrator"
)
