package ports

import (
	"context"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// AnalysisLauncher hands compiled artifacts to the analysis driver.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type AnalysisLauncher interface {
	// Launch runs the comparing driver on the stable (old) and current (new) artifacts
	// and blocks until it exits.
	Launch(ctx context.Context, oldArtifact, newArtifact domain.ResolvedArtifact, cfg domain.AnalysisConfig) error

	// LaunchPublicOnly runs the public surface driver on a single artifact bound as new.
	LaunchPublicOnly(ctx context.Context, artifact domain.ResolvedArtifact, cfg domain.AnalysisConfig) error
}
