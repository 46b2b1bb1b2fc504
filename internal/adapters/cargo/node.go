package cargo

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/config"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/registry"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the package resolver node.
	ResolverNodeID graft.ID = "adapter.cargo.resolver"
	// BuilderNodeID is the unique identifier for the cargo builder node.
	BuilderNodeID graft.ID = "adapter.cargo.builder"
)

func init() {
	graft.Register(graft.Node[ports.PackageResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, registry.SourceNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageResolver, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.PackageSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(source, filepath.Join(settings.CacheDir, domain.WorkDirName), log), nil
		},
	})

	graft.Register(graft.Node[ports.Builder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(settings.Cargo, log), nil
		},
	})
}
