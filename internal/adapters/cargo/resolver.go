package cargo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Resolver implements ports.PackageResolver on top of Cargo.toml manifests
// and a registry package source.
type Resolver struct {
	source  ports.PackageSource
	workDir string
	logger  ports.Logger
	getenv  func(string) string

	mu        sync.Mutex
	ephemeral []string
}

var _ ports.PackageResolver = (*Resolver)(nil)

// NewResolver creates a resolver that downloads remote packages from source
// and places ephemeral target directories under workDir.
func NewResolver(source ports.PackageSource, workDir string, logger ports.Logger) *Resolver {
	return &Resolver{
		source:  source,
		workDir: workDir,
		logger:  logger,
		getenv:  os.Getenv,
	}
}

// FindManifest locates the manifest for a file or directory path.
func (r *Resolver) FindManifest(path string) (string, error) {
	return findManifest(path)
}

// ResolveLocal loads the package at manifestPath and its enclosing workspace.
func (r *Resolver) ResolveLocal(_ context.Context, manifestPath string) (*domain.ResolvedWork, error) {
	manifestPath, err := findManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	rootManifest, root, err := findWorkspaceRoot(manifestPath)
	if err != nil {
		return nil, err
	}

	pkg, err := loadPackage(manifestPath, root)
	if err != nil {
		return nil, err
	}

	rootDir := filepath.Dir(rootManifest)
	return &domain.ResolvedWork{
		Package: pkg,
		Workspace: &domain.Workspace{
			Root:         rootDir,
			ManifestPath: manifestPath,
			TargetDir:    targetDir(rootDir, r.getenv),
		},
	}, nil
}

// ResolveRemote fetches the exact package revision and wraps it in an
// ephemeral workspace with a fresh target directory.
func (r *Resolver) ResolveRemote(
	ctx context.Context,
	pkg domain.NameAndVersion,
	opts domain.ResolveOptions,
) (*domain.ResolvedWork, error) {
	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	id := domain.PackageID{Name: pkg.Name, Version: pkg.Version, Source: r.source.SourceID()}

	unlock, err := r.source.Lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !opts.Offline {
		if err := r.source.Update(ctx, pkg.Name); err != nil {
			return nil, err
		}
	}

	dir, err := r.source.Download(ctx, id, opts.Offline)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	meta, err := loadPackage(manifestPath, nil)
	if err != nil {
		return nil, err
	}
	if meta.Name != pkg.Name {
		notFound := fmt.Errorf("%w: %s downloaded a manifest named %s", domain.ErrPackageNotFound, id, meta.Name)
		return nil, zerr.With(zerr.With(notFound, "package", id.String()), "manifest_name", meta.Name)
	}

	target, err := r.ephemeralTargetDir(id)
	if err != nil {
		return nil, err
	}

	r.logger.Info(fmt.Sprintf("resolved %s", id))

	return &domain.ResolvedWork{
		Package: meta,
		Workspace: &domain.Workspace{
			Root:         dir,
			ManifestPath: manifestPath,
			TargetDir:    target,
			Ephemeral:    true,
		},
	}, nil
}

// Cleanup removes the target directories created for remote packages.
func (r *Resolver) Cleanup() error {
	r.mu.Lock()
	dirs := r.ephemeral
	r.ephemeral = nil
	r.mu.Unlock()

	var errs []error
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to remove target directory"), "path", dir))
		}
	}
	return errors.Join(errs...)
}

func (r *Resolver) ephemeralTargetDir(id domain.PackageID) (string, error) {
	if err := os.MkdirAll(r.workDir, domain.DirPerm); err != nil {
		return "", zerr.With(fmt.Errorf("%w %s: %w", domain.ErrCacheCreateFailed, r.workDir, err), "path", r.workDir)
	}

	pattern := fmt.Sprintf("%s-%s-%016x-", id.Name, id.Version, xxhash.Sum64String(id.String()))
	dir, err := os.MkdirTemp(r.workDir, pattern)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w %s: %w", domain.ErrCacheCreateFailed, r.workDir, err), "path", r.workDir)
	}

	r.mu.Lock()
	r.ephemeral = append(r.ephemeral, dir)
	r.mu.Unlock()
	return dir, nil
}

// validatePackage checks that pkg names a crate and an exact semver version.
func validatePackage(pkg domain.NameAndVersion) error {
	spec := pkg.Name + ":" + pkg.Version
	if !validCrateName(pkg.Name) {
		return zerr.With(fmt.Errorf("%w %q: invalid crate name", domain.ErrPackageIDInvalid, spec), "spec", spec)
	}

	v := "v" + pkg.Version
	core, _, _ := strings.Cut(v, "+")
	if !semver.IsValid(v) || semver.Canonical(v) != core {
		return zerr.With(fmt.Errorf("%w %q: version is not an exact semver version", domain.ErrPackageIDInvalid, spec), "spec", spec)
	}
	return nil
}

func validCrateName(name string) bool {
	if name == "" || len(name) > 64 {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '_'):
		default:
			return false
		}
	}
	return true
}
