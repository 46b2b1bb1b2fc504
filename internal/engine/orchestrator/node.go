package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/cargo"              //nolint:depguard // Wired in engine wiring
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.BuilderNodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			builder, err := graft.Dep[ports.Builder](ctx)
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
			return New(builder, telemetry, log), nil
		},
	})
}
