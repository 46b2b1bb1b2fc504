package registry

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source implements ports.PackageSource for a sparse registry.
type Source struct {
	id         domain.SourceID
	index      *Index
	downloader *Downloader
	lock       *CacheLock
	logger     ports.Logger
}

var _ ports.PackageSource = (*Source)(nil)

// NewSource creates a package source from settings, keeping all state under
// settings.CacheDir.
func NewSource(settings *domain.Settings, logger ports.Logger) *Source {
	client := &http.Client{Timeout: settings.HTTPTimeout}
	cache := settings.CacheDir

	return &Source{
		id:    domain.SourceID{Kind: domain.SourceKindRegistry, URL: settings.RegistryIndex},
		index: NewIndex(settings.RegistryIndex, filepath.Join(cache, domain.IndexDirName), client),
		downloader: NewDownloader(
			settings.RegistryDownload,
			filepath.Join(cache, domain.CratesDirName),
			filepath.Join(cache, domain.SrcDirName),
			client,
		),
		lock:   NewCacheLock(filepath.Join(cache, domain.PackageCacheLockName)),
		logger: logger,
	}
}

// SourceID returns the registry identity.
func (s *Source) SourceID() domain.SourceID {
	return s.id
}

// Update refreshes the index entry for name.
func (s *Source) Update(ctx context.Context, name string) error {
	return s.index.Refresh(ctx, name)
}

// Download returns the extracted sources of id, fetching them unless offline.
func (s *Source) Download(ctx context.Context, id domain.PackageID, offline bool) (string, error) {
	if dir, ok := s.downloader.Extracted(id.Name, id.Version); ok {
		return dir, nil
	}

	if offline {
		unavailable := fmt.Errorf("%w: %s is not cached and the network is disabled", domain.ErrRegistryUnavailable, id)
		return "", zerr.With(unavailable, "package", id.String())
	}

	rec, err := s.index.Lookup(id.Name, id.Version)
	if err != nil {
		return "", err
	}
	if rec.Yanked {
		s.logger.Warn(fmt.Sprintf("%s is yanked", id))
	}

	s.logger.Info(fmt.Sprintf("downloading %s", id))
	return s.downloader.Fetch(ctx, id.Name, id.Version, rec.Checksum)
}

// Lock acquires the package cache lock.
func (s *Source) Lock() (func(), error) {
	return s.lock.Lock()
}
