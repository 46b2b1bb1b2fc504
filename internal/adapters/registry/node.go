package registry

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/config"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
)

const (
	// LookupNodeID is the unique identifier for the registry lookup node.
	LookupNodeID graft.ID = "adapter.registry.lookup"
	// SourceNodeID is the unique identifier for the package source node.
	SourceNodeID graft.ID = "adapter.registry.source"
)

func init() {
	graft.Register(graft.Node[ports.RegistryLookup]{
		ID:        LookupNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.RegistryLookup, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings.RegistryAPI, &http.Client{Timeout: settings.HTTPTimeout}), nil
		},
	})

	graft.Register(graft.Node[ports.PackageSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageSource, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(settings, log), nil
		},
	})
}
