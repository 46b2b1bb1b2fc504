package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/config"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/telemetry/progrock"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
)

// NodeID is the unique identifier for the analysis launcher node.
const NodeID graft.ID = "adapter.driver.launcher"

func init() {
	graft.Register(graft.Node[ports.AnalysisLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.AnalysisLauncher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(settings.Driver, settings.PublicDriver, telemetry, log), nil
		},
	})
}
