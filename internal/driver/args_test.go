package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "appends sysroot",
			args: []string{"rust-semverver", "--crate-type=lib", "-"},
			want: []string{"rust-semverver", "--crate-type=lib", "-", "--sysroot", "/sys"},
		},
		{
			name: "drops wrapper rustc",
			args: []string{"rust-semverver", "/usr/bin/rustc", "--crate-type=lib", "-"},
			want: []string{"rust-semverver", "--crate-type=lib", "-", "--sysroot", "/sys"},
		},
		{
			name: "keeps explicit sysroot",
			args: []string{"rust-semverver", "--sysroot", "/custom", "-"},
			want: []string{"rust-semverver", "--sysroot", "/custom", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := driver.PrepareArgs(tt.args, "/sys")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareArgs_DoesNotMutateInput(t *testing.T) {
	args := []string{"rust-semverver", "rustc", "-"}
	_, err := driver.PrepareArgs(args, "/sys")
	require.NoError(t, err)
	assert.Equal(t, []string{"rust-semverver", "rustc", "-"}, args)
}

func TestPrepareArgs_Missing(t *testing.T) {
	_, err := driver.PrepareArgs([]string{"rust-semverver"}, "/sys")
	require.ErrorIs(t, err, domain.ErrDriverArgsMissing)
}

func TestWantsVersion(t *testing.T) {
	assert.True(t, driver.WantsVersion([]string{"rust-semverver", "-V"}))
	assert.True(t, driver.WantsVersion([]string{"rust-semverver", "--version"}))
	assert.False(t, driver.WantsVersion([]string{"rust-semverver", "-"}))
}

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFindSysroot(t *testing.T) {
	ctx := context.Background()

	got, err := driver.FindSysroot(ctx, envOf(map[string]string{
		"SYSROOT":          "/explicit",
		"RUSTUP_HOME":      "/home/u/.rustup",
		"RUSTUP_TOOLCHAIN": "nightly",
	}), "")
	require.NoError(t, err)
	assert.Equal(t, "/explicit", got)

	got, err = driver.FindSysroot(ctx, envOf(map[string]string{
		"RUSTUP_HOME":      "/home/u/.rustup",
		"RUSTUP_TOOLCHAIN": "nightly-2020-06-01",
	}), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u/.rustup", "toolchains", "nightly-2020-06-01"), got)

	got, err = driver.FindSysroot(ctx, envOf(map[string]string{
		"MULTIRUST_HOME":      "/opt/multirust",
		"MULTIRUST_TOOLCHAIN": "nightly",
	}), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/multirust", "toolchains", "nightly"), got)
}

func TestFindSysroot_AsksRustc(t *testing.T) {
	dir := t.TempDir()
	rustc := filepath.Join(dir, "rustc")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(rustc, []byte("#!/bin/sh\necho '/toolchains/nightly'\n"), 0o700))

	got, err := driver.FindSysroot(context.Background(), envOf(nil), rustc)
	require.NoError(t, err)
	assert.Equal(t, "/toolchains/nightly", got)
}

func TestFindSysroot_NotFound(t *testing.T) {
	_, err := driver.FindSysroot(context.Background(), envOf(nil), filepath.Join(t.TempDir(), "no-rustc"))
	require.ErrorIs(t, err, domain.ErrSysrootNotFound)
}
