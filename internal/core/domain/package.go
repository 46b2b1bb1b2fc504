package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// SourceKind identifies where a package revision is fetched from.
type SourceKind string

const (
	// SourceKindRegistry is a package registry reachable through an index.
	SourceKindRegistry SourceKind = "registry"
)

// SourceID identifies a package source, e.g. the crates.io sparse index.
type SourceID struct {
	Kind SourceKind
	URL  string
}

// String renders the source the way cargo prints source ids.
func (s SourceID) String() string {
	return fmt.Sprintf("%s+%s", s.Kind, s.URL)
}

// PackageID uniquely addresses one downloadable package revision.
type PackageID struct {
	Name    string
	Version string
	Source  SourceID
}

// String returns "name vversion (source)".
func (id PackageID) String() string {
	return fmt.Sprintf("%s v%s (%s)", id.Name, id.Version, id.Source)
}

// NameAndVersion is a package's name and version as given by the user.
type NameAndVersion struct {
	// Name is the crate's name.
	Name string
	// Version is the package's version, as a semver string.
	Version string
}

// ParsePackageSpec parses the string "name:version".
func ParsePackageSpec(s string) (NameAndVersion, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return NameAndVersion{}, zerr.With(fmt.Errorf("%w, got %q", ErrInvalidPackageSpec, s), "spec", s)
	}
	return NameAndVersion{Name: parts[0], Version: parts[1]}, nil
}

// Target is one build target declared by a package.
type Target struct {
	Name    string
	Kinds   []string
	SrcPath string
}

// ProcMacroKind is the kind of a procedural macro library target.
const ProcMacroKind = "proc-macro"

// IsLibrary reports whether the target is a library, procedural macros
// included. Only library-like kinds are ever looked up in a build plan.
func (t Target) IsLibrary() bool {
	for _, k := range t.Kinds {
		if IsLibraryKind(k) || k == ProcMacroKind {
			return true
		}
	}
	return false
}

// IsLibraryKind reports whether a target kind produces a linkable library
// ("lib", "rlib", "dylib", "cdylib", "staticlib").
func IsLibraryKind(kind string) bool {
	return strings.Contains(kind, "lib")
}

// PackageMetadata is a loaded package.
type PackageMetadata struct {
	Name         string
	Version      string
	ManifestPath string
	Targets      []Target
}

// HasLibrary reports whether the package declares a library target.
func (p *PackageMetadata) HasLibrary() bool {
	for _, t := range p.Targets {
		if t.IsLibrary() {
			return true
		}
	}
	return false
}

// Workspace is the build context a package is compiled in.
type Workspace struct {
	// Root is the directory of the workspace root manifest.
	Root string
	// ManifestPath is the manifest cargo is pointed at.
	ManifestPath string
	// TargetDir is where cargo writes its outputs.
	TargetDir string
	// Ephemeral is set for workspaces synthesized around a single downloaded package.
	Ephemeral bool
}

// ResolvedWork is a package together with its workspace.
type ResolvedWork struct {
	Package   *PackageMetadata
	Workspace *Workspace
}

// ResolveOptions configures remote resolution.
type ResolveOptions struct {
	// Offline forbids network access; only already cached packages resolve.
	Offline bool
}
