// Package cargo resolves cargo packages and drives cargo check passes.
package cargo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultVersion is what cargo assumes when a manifest omits the version.
const defaultVersion = "0.0.0"

type manifestFile struct {
	Package   *manifestPackage   `toml:"package"`
	Workspace *manifestWorkspace `toml:"workspace"`
	Lib       *manifestLib       `toml:"lib"`
	Bins      []manifestBin      `toml:"bin"`
}

type manifestPackage struct {
	Name     string `toml:"name"`
	Version  any    `toml:"version"`
	Autobins *bool  `toml:"autobins"`
	Autolib  *bool  `toml:"autolib"`
}

type manifestWorkspace struct {
	Members []string                  `toml:"members"`
	Package *manifestWorkspacePackage `toml:"package"`
}

type manifestWorkspacePackage struct {
	Version string `toml:"version"`
}

type manifestLib struct {
	Name      string   `toml:"name"`
	Path      string   `toml:"path"`
	CrateType []string `toml:"crate-type"`
	ProcMacro bool     `toml:"proc-macro"`
}

type manifestBin struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

func readManifest(path string) (*manifestFile, error) {
	//nolint:gosec // path is a manifest discovered on behalf of the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, manifestNotFound(path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var m manifestFile
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, zerr.With(fmt.Errorf("%w %s: %w", domain.ErrManifestInvalid, path, err), "path", path)
	}
	return &m, nil
}

// loadPackage reads the package declared by the manifest at path. The
// workspace manifest, when distinct, supplies inherited fields.
func loadPackage(path string, workspace *manifestFile) (*domain.PackageMetadata, error) {
	m, err := readManifest(path)
	if err != nil {
		return nil, err
	}
	if workspace == nil && m.Workspace != nil {
		workspace = m
	}
	return m.toPackage(path, workspace)
}

func (m *manifestFile) toPackage(path string, workspace *manifestFile) (*domain.PackageMetadata, error) {
	if m.Package == nil {
		return nil, zerr.With(fmt.Errorf("%w %s: virtual manifest has no [package]", domain.ErrManifestInvalid, path), "path", path)
	}
	if m.Package.Name == "" {
		return nil, zerr.With(fmt.Errorf("%w %s: missing package name", domain.ErrManifestInvalid, path), "path", path)
	}

	version, err := m.packageVersion(workspace)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w %s: %w", domain.ErrManifestInvalid, path, err), "path", path)
	}

	dir := filepath.Dir(path)
	return &domain.PackageMetadata{
		Name:         m.Package.Name,
		Version:      version,
		ManifestPath: path,
		Targets:      m.targets(dir),
	}, nil
}

func (m *manifestFile) packageVersion(workspace *manifestFile) (string, error) {
	switch v := m.Package.Version.(type) {
	case nil:
		return defaultVersion, nil
	case string:
		return v, nil
	case map[string]any:
		if inherit, _ := v["workspace"].(bool); inherit {
			if workspace == nil || workspace.Workspace == nil ||
				workspace.Workspace.Package == nil || workspace.Workspace.Package.Version == "" {
				return "", errors.New("version inherited from a workspace that does not define it")
			}
			return workspace.Workspace.Package.Version, nil
		}
	}
	return "", errors.New("unsupported package.version value")
}

// targets lists the declared and inferred targets of the package rooted at dir.
func (m *manifestFile) targets(dir string) []domain.Target {
	var targets []domain.Target

	if lib, ok := m.libraryTarget(dir); ok {
		targets = append(targets, lib)
	}

	seen := make(map[string]bool)
	for _, b := range m.Bins {
		name := b.Name
		if name == "" {
			name = m.Package.Name
		}
		src := b.Path
		if src == "" {
			src = filepath.Join("src", "bin", name+".rs")
		}
		seen[name] = true
		targets = append(targets, domain.Target{
			Name:    name,
			Kinds:   []string{"bin"},
			SrcPath: filepath.Join(dir, src),
		})
	}

	autobins := m.Package.Autobins == nil || *m.Package.Autobins
	mainRS := filepath.Join(dir, "src", "main.rs")
	if autobins && !seen[m.Package.Name] && fileExists(mainRS) {
		targets = append(targets, domain.Target{
			Name:    m.Package.Name,
			Kinds:   []string{"bin"},
			SrcPath: mainRS,
		})
	}

	return targets
}

func (m *manifestFile) libraryTarget(dir string) (domain.Target, bool) {
	src := filepath.Join(dir, "src", "lib.rs")
	if m.Lib == nil {
		autolib := m.Package.Autolib == nil || *m.Package.Autolib
		if !autolib || !fileExists(src) {
			return domain.Target{}, false
		}
		return domain.Target{
			Name:    libName(m.Package.Name),
			Kinds:   []string{"lib"},
			SrcPath: src,
		}, true
	}

	name := m.Lib.Name
	if name == "" {
		name = libName(m.Package.Name)
	}
	if m.Lib.Path != "" {
		src = filepath.Join(dir, m.Lib.Path)
	}

	kinds := m.Lib.CrateType
	switch {
	case m.Lib.ProcMacro:
		kinds = []string{"proc-macro"}
	case len(kinds) == 0:
		kinds = []string{"lib"}
	}

	return domain.Target{Name: name, Kinds: kinds, SrcPath: src}, true
}

func libName(pkg string) string {
	return strings.ReplaceAll(pkg, "-", "_")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
