// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// PackageResolver turns package references into packages with their workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PackageResolver interface {
	// FindManifest locates the root manifest for a file or directory path.
	FindManifest(path string) (string, error)

	// ResolveLocal loads the package and its enclosing workspace from a manifest.
	// It never touches the network.
	ResolveLocal(ctx context.Context, manifestPath string) (*domain.ResolvedWork, error)

	// ResolveRemote fetches an exact package revision from the registry and wraps it
	// in an ephemeral workspace of its own.
	ResolveRemote(ctx context.Context, pkg domain.NameAndVersion, opts domain.ResolveOptions) (*domain.ResolvedWork, error)

	// Cleanup removes the ephemeral workspaces created by ResolveRemote.
	Cleanup() error
}

// RegistryLookup discovers published versions of a package.
type RegistryLookup interface {
	// FindLatestStable returns the maximum published version of the crate
	// whose name matches exactly.
	FindLatestStable(ctx context.Context, name string) (string, error)
}

// PackageSource fetches package revisions from a registry.
type PackageSource interface {
	// SourceID returns the identity of the registry.
	SourceID() domain.SourceID

	// Update refreshes the index entry for the named package.
	// Callers must hold the package cache lock.
	Update(ctx context.Context, name string) error

	// Download makes the package's sources available locally and returns their directory.
	// With offline set, only an already extracted revision is returned.
	Download(ctx context.Context, id domain.PackageID, offline bool) (string, error)

	// Lock acquires the process-wide package cache lock.
	Lock() (unlock func(), err error)
}
