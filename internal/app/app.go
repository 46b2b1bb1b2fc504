// Package app implements the application layer for cargo-semver.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rust-dev-tools/rust-semverver/internal/adapters/driver" //nolint:depguard // Debug rendering of driver bindings
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"github.com/rust-dev-tools/rust-semverver/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// Options are the per-run choices made on the command line.
type Options struct {
	// CurrentPath is a manifest or directory for the current version; defaults to the working directory.
	CurrentPath string
	// CurrentPkg is a "name:version" registry package used as the current version.
	CurrentPkg string
	// StablePath is a manifest or directory for the stable version.
	StablePath string
	// StablePkg is a "name:version" registry package used as the stable version.
	StablePkg string

	// Offline forbids registry access; remote packages must already be cached.
	Offline bool
	// ShowPublic inspects the current version's public surface instead of comparing.
	ShowPublic bool
	// Debug prints the driver bindings instead of running the analysis.
	Debug bool

	// Build is forwarded identically to both lanes.
	Build domain.BuildOptions

	Explain       bool
	Compact       bool
	JSON          bool
	APIGuidelines bool
}

// App represents the main application logic.
type App struct {
	resolver     ports.PackageResolver
	registry     ports.RegistryLookup
	orchestrator *orchestrator.Orchestrator
	launcher     ports.AnalysisLauncher
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	resolver ports.PackageResolver,
	registry ports.RegistryLookup,
	orch *orchestrator.Orchestrator,
	launcher ports.AnalysisLauncher,
	logger ports.Logger,
) *App {
	return &App{
		resolver:     resolver,
		registry:     registry,
		orchestrator: orch,
		launcher:     launcher,
		logger:       logger,
		stdout:       os.Stdout,
	}
}

// WithStdout sets where debug output is printed.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// Run resolves both versions, compiles them, and hands the artifacts to the
// analysis driver. Any failure aborts the run.
func (a *App) Run(ctx context.Context, opts Options) error {
	resolveOpts := domain.ResolveOptions{Offline: opts.Offline}

	current, err := a.resolveCurrent(ctx, opts, resolveOpts)
	if err != nil {
		return err
	}

	name := current.Package.Name
	if !current.Package.HasLibrary() {
		return zerr.With(fmt.Errorf("%w: %s", domain.ErrMissingLibraryTarget, name), "package", name)
	}

	cfg := domain.AnalysisConfig{
		Explain:       opts.Explain,
		Compact:       opts.Compact,
		JSON:          opts.JSON,
		APIGuidelines: opts.APIGuidelines,
		Target:        opts.Build.Target,
	}

	if opts.ShowPublic {
		artifact, err := a.orchestrator.CompileLane(ctx, current, domain.LaneCurrent, opts.Build)
		if err != nil {
			return err
		}
		return a.launcher.LaunchPublicOnly(ctx, *artifact, cfg)
	}

	stable, stableVersion, err := a.resolveStable(ctx, opts, name, resolveOpts)
	if err != nil {
		return err
	}

	currentArtifact, stableArtifact, err := a.orchestrator.CompileBoth(ctx, current, stable, opts.Build)
	if err != nil {
		return err
	}

	if opts.Debug {
		_, err := fmt.Fprintln(a.stdout, driver.DebugCommand(*stableArtifact, *currentArtifact))
		return err
	}

	cfg.StableVersion = stableVersion
	a.logger.Info(fmt.Sprintf("comparing %s %s against %s", name, current.Package.Version, stableVersion))
	return a.launcher.Launch(ctx, *stableArtifact, *currentArtifact, cfg)
}

func (a *App) resolveCurrent(ctx context.Context, opts Options, resolveOpts domain.ResolveOptions) (*domain.ResolvedWork, error) {
	if opts.CurrentPkg != "" {
		pkg, err := domain.ParsePackageSpec(opts.CurrentPkg)
		if err != nil {
			return nil, err
		}
		return a.resolver.ResolveRemote(ctx, pkg, resolveOpts)
	}

	path := opts.CurrentPath
	if path == "" {
		path = "."
	}
	return a.resolveLocal(ctx, path)
}

// resolveStable returns the stable work together with the version string
// reported in the analysis header.
func (a *App) resolveStable(
	ctx context.Context,
	opts Options,
	name string,
	resolveOpts domain.ResolveOptions,
) (*domain.ResolvedWork, string, error) {
	switch {
	case opts.StablePkg != "":
		pkg, err := domain.ParsePackageSpec(opts.StablePkg)
		if err != nil {
			return nil, "", err
		}
		work, err := a.resolver.ResolveRemote(ctx, pkg, resolveOpts)
		if err != nil {
			return nil, "", err
		}
		return work, pkg.Version, nil

	case opts.StablePath != "":
		work, err := a.resolveLocal(ctx, opts.StablePath)
		if err != nil {
			return nil, "", err
		}
		return work, work.Package.Version, nil

	default:
		if resolveOpts.Offline {
			offline := fmt.Errorf("%w: finding the latest version of %s needs the network, pass -s or -S when offline",
				domain.ErrRegistryUnavailable, name)
			return nil, "", zerr.With(offline, "package", name)
		}
		version, err := a.registry.FindLatestStable(ctx, name)
		if err != nil {
			return nil, "", err
		}
		work, err := a.resolver.ResolveRemote(ctx, domain.NameAndVersion{Name: name, Version: version}, resolveOpts)
		if err != nil {
			return nil, "", err
		}
		return work, version, nil
	}
}

func (a *App) resolveLocal(ctx context.Context, path string) (*domain.ResolvedWork, error) {
	manifest, err := a.resolver.FindManifest(path)
	if err != nil {
		return nil, err
	}
	return a.resolver.ResolveLocal(ctx, manifest)
}
