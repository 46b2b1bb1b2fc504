package buildplan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// planDocument mirrors the build plan JSON. Invocations is a pointer so a
// document without the key can be told apart from an empty list.
type planDocument struct {
	Invocations *[]domain.Invocation `json:"invocations"`
}

// Decode parses a captured build plan. Empty, truncated or malformed input
// and documents without an invocations list fail with ErrBuildPlanUnreadable.
func Decode(data []byte) (*domain.BuildPlan, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty build plan", domain.ErrBuildPlanUnreadable)
	}

	var doc planDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrBuildPlanUnreadable, err), "size", len(data))
	}

	if doc.Invocations == nil {
		return nil, fmt.Errorf("%w: missing invocations", domain.ErrBuildPlanUnreadable)
	}

	return &domain.BuildPlan{Invocations: *doc.Invocations}, nil
}

// FindLibraryOutput returns the first output of the first invocation, in
// plan order, that compiles a library-like target of the named package.
//
// Packages exposing several library-like targets resolve to whichever comes
// first in the plan.
func FindLibraryOutput(plan *domain.BuildPlan, packageName string) (string, error) {
	for _, inv := range plan.Invocations {
		if inv.PackageName != packageName || len(inv.Outputs) == 0 {
			continue
		}
		for _, kind := range inv.TargetKinds {
			if domain.IsLibraryKind(kind) {
				return inv.Outputs[0], nil
			}
		}
	}
	return "", zerr.With(fmt.Errorf("%w for package %s", domain.ErrArtifactNotFound, packageName), "package", packageName)
}
