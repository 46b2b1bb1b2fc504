package registry

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxCrateSize bounds a single .crate download.
const maxCrateSize = 256 << 20

// Downloader fetches .crate archives and unpacks them into the source cache.
type Downloader struct {
	baseURL    string
	cratesDir  string
	srcDir     string
	httpClient *http.Client
}

// NewDownloader creates a downloader for the registry's download endpoint.
func NewDownloader(baseURL, cratesDir, srcDir string, httpClient *http.Client) *Downloader {
	return &Downloader{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cratesDir:  filepath.Clean(cratesDir),
		srcDir:     filepath.Clean(srcDir),
		httpClient: httpClient,
	}
}

// packageDir is the extracted source directory of a package revision.
func (d *Downloader) packageDir(name, version string) string {
	return filepath.Join(d.srcDir, name+"-"+version)
}

// Extracted returns the source directory if the revision is already unpacked.
func (d *Downloader) Extracted(name, version string) (string, bool) {
	dir := d.packageDir(name, version)
	info, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	if err != nil || info.IsDir() {
		return "", false
	}
	return dir, true
}

// Fetch downloads the archive for name and version, verifies it against the
// index checksum, and unpacks it. It returns the extracted source directory.
func (d *Downloader) Fetch(ctx context.Context, name, version, checksum string) (string, error) {
	cratePath := filepath.Join(d.cratesDir, fmt.Sprintf("%s-%s.crate", name, version))

	if sum, err := fileChecksum(cratePath); err != nil || sum != checksum {
		data, err := d.download(ctx, name, version)
		if err != nil {
			return "", err
		}

		actual := sha256.Sum256(data)
		if got := hex.EncodeToString(actual[:]); got != checksum {
			mismatch := fmt.Errorf("%w for %s-%s: expected %s, got %s", domain.ErrChecksumMismatch, name, version, checksum, got)
			return "", zerr.With(mismatch, "package", name+"-"+version)
		}

		if err := atomicWriteFile(cratePath, data); err != nil {
			return "", cacheFailed(cratePath, err)
		}
	}

	return d.unpack(cratePath, name, version)
}

func (d *Downloader) download(ctx context.Context, name, version string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/%s/%s-%s.crate", d.baseURL, name, name, version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, unreachable(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusForbidden:
		return nil, packageNotFound(name, version)
	default:
		return nil, badStatus(endpoint, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCrateSize))
	if err != nil {
		return nil, unreachable(endpoint, err)
	}
	return data, nil
}

// unpack extracts the archive into a scratch directory and moves it into
// place, so a crashed extraction never leaves a partial package behind.
func (d *Downloader) unpack(cratePath, name, version string) (string, error) {
	dest := d.packageDir(name, version)
	if dir, ok := d.Extracted(name, version); ok {
		return dir, nil
	}

	if err := os.MkdirAll(d.srcDir, domain.DirPerm); err != nil {
		return "", cacheFailed(d.srcDir, err)
	}

	scratch, err := os.MkdirTemp(d.srcDir, ".extract-*")
	if err != nil {
		return "", cacheFailed(d.srcDir, err)
	}
	defer func() {
		_ = os.RemoveAll(scratch)
	}()

	prefix := name + "-" + version
	if err := extractCrate(cratePath, prefix, scratch); err != nil {
		return "", zerr.With(err, "package", prefix)
	}

	_ = os.RemoveAll(dest)
	if err := os.Rename(scratch, dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to move extracted package"), "path", dest)
	}
	return dest, nil
}

// extractCrate unpacks the gzip'd tarball at path. Every entry must live
// under prefix/; entries escaping the destination are rejected.
func extractCrate(path, prefix, dest string) error {
	//nolint:gosec // path points into the crate cache
	f, err := os.Open(path)
	if err != nil {
		return zerr.Wrap(err, "failed to open crate archive")
	}
	defer func() {
		_ = f.Close()
	}()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return zerr.Wrap(err, "failed to read crate archive")
	}
	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read crate archive")
		}

		rel, err := entryTarget(hdr.Name, prefix)
		if err != nil {
			return err
		}
		if rel == "" {
			continue
		}
		target := filepath.Join(dest, rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory")
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			// Links and special files are not part of published packages.
		}
	}
}

// entryTarget maps an archive entry name to a path relative to the package root.
func entryTarget(name, prefix string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(name)))
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", zerr.With(zerr.New("archive entry has an absolute path"), "entry", name)
	}

	rest, ok := strings.CutPrefix(clean, prefix)
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return "", zerr.With(zerr.New("archive entry outside package directory"), "entry", name)
	}
	rest = strings.TrimPrefix(rest, "/")
	if rest == ".." || strings.HasPrefix(rest, "../") {
		return "", zerr.With(zerr.New("archive entry escapes package directory"), "entry", name)
	}
	return filepath.FromSlash(rest), nil
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	perm := domain.FilePerm
	if mode&0o111 != 0 {
		perm = 0o755
	}

	//nolint:gosec // target is confined to the scratch directory
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(perm))
	if err != nil {
		return zerr.Wrap(err, "failed to create file")
	}
	if _, err := io.Copy(out, io.LimitReader(r, maxCrateSize)); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to write file")
	}
	return out.Close()
}

func fileChecksum(path string) (string, error) {
	//nolint:gosec // path points into the crate cache
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
