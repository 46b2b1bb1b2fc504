package registry

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// indexRecord is one line of a sparse index file.
type indexRecord struct {
	Name     string `json:"name"`
	Version  string `json:"vers"`
	Checksum string `json:"cksum"`
	Yanked   bool   `json:"yanked"`
}

// Index is a sparse registry index with an on-disk copy of every entry fetched.
type Index struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
	group      singleflight.Group
}

// NewIndex creates an index reading from baseURL and caching under cacheDir.
func NewIndex(baseURL, cacheDir string, httpClient *http.Client) *Index {
	return &Index{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cacheDir:   filepath.Clean(cacheDir),
		httpClient: httpClient,
	}
}

// entryPath returns the index path of a package, following the registry's
// directory layout: 1/, 2/, 3/<c>/ for short names; <ab>/<cd>/ otherwise.
func entryPath(name string) string {
	n := strings.ToLower(name)
	switch len(n) {
	case 0:
		return ""
	case 1:
		return path.Join("1", n)
	case 2:
		return path.Join("2", n)
	case 3:
		return path.Join("3", n[:1], n)
	default:
		return path.Join(n[:2], n[2:4], n)
	}
}

// Refresh downloads the index entry for name into the cache. Concurrent
// refreshes of the same entry share one request; callers going through
// Source.Update already hold the cache lock and never overlap.
func (i *Index) Refresh(ctx context.Context, name string) error {
	_, err, _ := i.group.Do(name, func() (any, error) {
		return nil, i.fetch(ctx, name)
	})
	return err
}

func (i *Index) fetch(ctx context.Context, name string) error {
	entry := entryPath(name)
	endpoint := i.baseURL + "/" + entry

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return unreachable(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return zerr.With(fmt.Errorf("%w: %s", domain.ErrPackageNotFound, name), "package", name)
	default:
		return badStatus(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return unreachable(endpoint, err)
	}

	cachePath := filepath.Join(i.cacheDir, filepath.FromSlash(entry))
	if err := atomicWriteFile(cachePath, body); err != nil {
		return zerr.With(cacheFailed(cachePath, err), "package", name)
	}
	return nil
}

// Lookup finds the record of an exact version in the cached index entry.
func (i *Index) Lookup(name, version string) (*indexRecord, error) {
	cachePath := filepath.Join(i.cacheDir, filepath.FromSlash(entryPath(name)))

	data, err := os.ReadFile(cachePath) //nolint:gosec // path is derived from the cache root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notCached := fmt.Errorf("%w: index entry for %s is not cached", domain.ErrRegistryUnavailable, name)
			return nil, zerr.With(notCached, "package", name)
		}
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err), "package", name)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec indexRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.Version == version {
			return &rec, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err), "package", name)
	}

	return nil, packageNotFound(name, version)
}

// packageNotFound reports a version the registry does not publish.
func packageNotFound(name, version string) error {
	notFound := fmt.Errorf("%w: %s-%s", domain.ErrPackageNotFound, name, version)
	return zerr.With(zerr.With(notFound, "package", name), "version", version)
}

// cacheFailed reports a failure writing into the package cache.
func cacheFailed(path string, err error) error {
	return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrCacheCreateFailed, path, err), "path", path)
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
