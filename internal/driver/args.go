package driver

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
)

// WantsVersion reports whether the command line asks for the driver version.
func WantsVersion(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "--version" || a == "-V"
	})
}

// PrepareArgs turns the driver's own command line into the compiler's.
// args[0] is the program name. A leading rustc argument, as inserted by
// cargo when the driver runs as RUSTC_WRAPPER, is dropped, and --sysroot is
// appended unless already given.
func PrepareArgs(args []string, sysroot string) ([]string, error) {
	if len(args) <= 1 {
		return nil, domain.ErrDriverArgsMissing
	}

	out := slices.Clone(args)
	if isRustc(out[1]) {
		out = slices.Delete(out, 1, 2)
	}

	if !slices.Contains(out, "--sysroot") {
		out = append(out, "--sysroot", sysroot)
	}
	return out, nil
}

func isRustc(arg string) bool {
	base := filepath.Base(arg)
	return strings.TrimSuffix(base, filepath.Ext(base)) == "rustc"
}
