// Package orchestrator compiles the current and stable packages for comparison.
package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"github.com/rust-dev-tools/rust-semverver/internal/engine/buildplan"
	"go.trai.ch/zerr"
)

// Orchestrator runs the two build lanes one after the other.
type Orchestrator struct {
	builder   ports.Builder
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an orchestrator building through builder.
func New(builder ports.Builder, telemetry ports.Telemetry, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		builder:   builder,
		telemetry: telemetry,
		logger:    logger,
	}
}

// CompileLane compiles work's package in metadata-only mode under the lane's
// build identity and returns its library artifact. Packages without a
// library target are rejected before anything is built.
func (o *Orchestrator) CompileLane(
	ctx context.Context,
	work *domain.ResolvedWork,
	lane domain.BuildLane,
	opts domain.BuildOptions,
) (artifact *domain.ResolvedArtifact, err error) {
	pkg := work.Package
	if !pkg.HasLibrary() {
		missing := zerr.With(fmt.Errorf("%w: %s", domain.ErrMissingLibraryTarget, pkg.Name), "package", pkg.Name)
		return nil, laneError(lane, missing)
	}

	ctx, vertex := o.telemetry.Record(ctx, fmt.Sprintf("check %s v%s (%s)", pkg.Name, pkg.Version, lane))
	defer func() {
		vertex.Complete(err)
	}()

	o.logger.Info(fmt.Sprintf("compiling %s v%s as %s", pkg.Name, pkg.Version, lane))

	req := domain.BuildRequest{
		Workspace: work.Workspace,
		Package:   pkg.Name,
		Tag:       lane.Tag(),
		Options:   opts,
	}

	planReq := req
	planReq.Plan = true
	plan, err := buildplan.Run(func(sink io.Writer) error {
		_, buildErr := o.builder.Build(ctx, planReq, sink)
		return buildErr
	})
	if err != nil {
		return nil, laneError(lane, err)
	}

	out, err := o.builder.Build(ctx, req, vertex.Stdout())
	if err != nil {
		return nil, laneError(lane, err)
	}

	lib, err := buildplan.FindLibraryOutput(plan, pkg.Name)
	if err != nil {
		return nil, laneError(lane, err)
	}

	vertex.Log(domain.LogLevelInfo, "library "+lib)
	return &domain.ResolvedArtifact{
		LibraryPath:          lib,
		DependencySearchPath: out.DepsDir,
	}, nil
}

// CompileBoth compiles the current lane and then the stable lane. The lanes
// never run concurrently and share no build outputs.
func (o *Orchestrator) CompileBoth(
	ctx context.Context,
	current, stable *domain.ResolvedWork,
	opts domain.BuildOptions,
) (currentArtifact, stableArtifact *domain.ResolvedArtifact, err error) {
	currentArtifact, err = o.CompileLane(ctx, current, domain.LaneCurrent, opts)
	if err != nil {
		return nil, nil, err
	}

	stableArtifact, err = o.CompileLane(ctx, stable, domain.LaneStable, opts)
	if err != nil {
		return nil, nil, err
	}

	return currentArtifact, stableArtifact, nil
}

// laneError prefixes err with the lane it failed in.
func laneError(lane domain.BuildLane, err error) error {
	return zerr.With(fmt.Errorf("%s lane: %w", lane, err), "lane", lane.String())
}
