package driver

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"go.trai.ch/zerr"
)

// FindSysroot locates the toolchain sysroot, trying in order the SYSROOT
// variable, the rustup (or multirust) home and toolchain, and finally
// asking rustc itself.
func FindSysroot(ctx context.Context, getenv func(string) string, rustc string) (string, error) {
	if sysroot := getenv("SYSROOT"); sysroot != "" {
		return sysroot, nil
	}

	home := firstSet(getenv, "RUSTUP_HOME", "MULTIRUST_HOME")
	toolchain := firstSet(getenv, "RUSTUP_TOOLCHAIN", "MULTIRUST_TOOLCHAIN")
	if home != "" && toolchain != "" {
		return filepath.Join(home, "toolchains", toolchain), nil
	}

	if rustc == "" {
		rustc = "rustc"
	}
	//nolint:gosec // rustc path comes from the environment of the driver
	out, err := exec.CommandContext(ctx, rustc, "--print", "sysroot").Output()
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %s --print sysroot: %w", domain.ErrSysrootNotFound, rustc, err), "rustc", rustc)
	}
	if sysroot := strings.TrimSpace(string(out)); sysroot != "" {
		return sysroot, nil
	}
	return "", domain.ErrSysrootNotFound
}

func firstSet(getenv func(string) string, keys ...string) string {
	for _, k := range keys {
		if v := getenv(k); v != "" {
			return v
		}
	}
	return ""
}
