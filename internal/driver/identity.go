// Package driver implements the driver side of the analysis protocol: it
// recovers the artifacts bound by the input stub and prepares the compiler
// command line.
package driver

import (
	"fmt"
	"sort"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// stubDeclared reports whether c was declared by the input stub itself: a
// direct declaration with a real source location. Crates pulled in by
// dependencies are not direct; compiler-injected ones sit at offset zero.
func stubDeclared(c domain.ExternCrate) bool {
	return c.Direct && c.SpanLo > 0
}

// ResolveCrates recovers the two crates declared by the comparison stub.
// They are told apart by declaration order, never by name: the first in
// source order is old, the second new. Later declarations are ignored.
func ResolveCrates(program *domain.ElaboratedProgram) (oldCrate, newCrate domain.ExternCrate, err error) {
	var declared []domain.ExternCrate
	for _, c := range program.Crates {
		if stubDeclared(c) {
			declared = append(declared, c)
		}
	}
	sort.SliceStable(declared, func(i, j int) bool {
		return declared[i].SpanLo < declared[j].SpanLo
	})

	if len(declared) < 2 {
		notFound := fmt.Errorf("%w: %d declared", domain.ErrCratesNotFound, len(declared))
		return domain.ExternCrate{}, domain.ExternCrate{}, zerr.With(notFound, "declared", len(declared))
	}
	return declared[0], declared[1], nil
}

// ResolvePublicCrate recovers the single crate declared by the public surface stub.
// The first qualifying crate, in crate number order, wins.
func ResolvePublicCrate(program *domain.ElaboratedProgram) (domain.ExternCrate, error) {
	for _, c := range program.Crates {
		if stubDeclared(c) {
			return c, nil
		}
	}
	return domain.ExternCrate{}, domain.ErrPublicCrateNotFound
}
