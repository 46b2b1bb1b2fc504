package cargo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// targetDirEnv overrides the target directory of every build.
const targetDirEnv = "CARGO_TARGET_DIR"

// findManifest resolves path to a manifest. A file is taken as is; a
// directory is searched upwards for the nearest Cargo.toml.
func findManifest(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", manifestNotFound(abs)
	}
	if !info.IsDir() {
		return abs, nil
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, domain.ManifestFileName)
		if fileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", manifestNotFound(abs)
		}
		dir = parent
	}
}

func manifestNotFound(path string) error {
	return zerr.With(fmt.Errorf("%w at %s", domain.ErrManifestNotFound, path), "path", path)
}

// findWorkspaceRoot returns the manifest of the nearest ancestor declaring
// [workspace], the package manifest itself included. Packages outside any
// workspace are their own root.
func findWorkspaceRoot(manifestPath string) (string, *manifestFile, error) {
	m, err := readManifest(manifestPath)
	if err != nil {
		return "", nil, err
	}
	if m.Workspace != nil {
		return manifestPath, m, nil
	}

	dir := filepath.Dir(filepath.Dir(manifestPath))
	for {
		candidate := filepath.Join(dir, domain.ManifestFileName)
		if fileExists(candidate) {
			root, err := readManifest(candidate)
			if err != nil {
				return "", nil, err
			}
			if root.Workspace != nil {
				return candidate, root, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return manifestPath, nil, nil
		}
		dir = parent
	}
}

// targetDir returns where cargo writes outputs for a workspace rooted at root.
func targetDir(root string, getenv func(string) string) string {
	if dir := getenv(targetDirEnv); dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}
		return dir
	}
	return filepath.Join(root, "target")
}
