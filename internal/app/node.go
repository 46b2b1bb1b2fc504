package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/cargo"              //nolint:depguard // Wired in app layer
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/driver"             //nolint:depguard // Wired in app layer
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/registry"           //nolint:depguard // Wired in app layer
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"github.com/rust-dev-tools/rust-semverver/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.ResolverNodeID,
			registry.LookupNodeID,
			orchestrator.NodeID,
			driver.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			cargo.ResolverNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.PackageResolver](ctx)
	if err != nil {
		return nil, err
	}

	lookup, err := graft.Dep[ports.RegistryLookup](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.AnalysisLauncher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, lookup, orch, launcher, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PackageResolver](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
		Resolver:  resolver,
	}, nil
}
