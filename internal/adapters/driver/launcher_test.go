package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/adapters/driver"
	"github.com/rust-dev-tools/rust-semverver/internal/adapters/telemetry"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recording struct {
	dir    string
	script string
}

// fakeDriver writes a driver stand-in recording its arguments, standard
// input, and environment channels, then running body.
func fakeDriver(t *testing.T, body string) recording {
	t.Helper()
	dir := t.TempDir()
	script := filepath.Join(dir, "driver")
	content := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + dir + "/args\"\n" +
		"cat > \"" + dir + "/stdin\"\n" +
		"env | grep '^RUST_SEMVER_' | sort > \"" + dir + "/env\"\n" +
		body
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(script, []byte(content), 0o700))
	return recording{dir: dir, script: script}
}

func (r recording) read(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.dir, name)) //nolint:gosec // test fixture
	require.NoError(t, err)
	return string(data)
}

func (r recording) lines(t *testing.T, name string) []string {
	t.Helper()
	content := strings.TrimSuffix(r.read(t, name), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

var (
	stableArtifact = domain.ResolvedArtifact{
		LibraryPath:          "/cache/work/foo/debug/deps/libfoo-old.rmeta",
		DependencySearchPath: "/cache/work/foo/debug/deps",
	}
	currentArtifact = domain.ResolvedArtifact{
		LibraryPath:          "/ws/target/debug/deps/libfoo-new.rmeta",
		DependencySearchPath: "/ws/target/debug/deps",
	}
)

func newLauncher(t *testing.T, driverPath, publicPath string, stdout *bytes.Buffer) *driver.Launcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return driver.NewLauncher(driverPath, publicPath, telemetry.NewNoOp(), log).WithOutput(stdout, &bytes.Buffer{})
}

func TestLauncher_Launch(t *testing.T) {
	rec := fakeDriver(t, "echo 'version bump: 1.0.0 -> (breaking) -> 2.0.0'\n")
	var stdout bytes.Buffer
	launcher := newLauncher(t, rec.script, "unused", &stdout)

	err := launcher.Launch(context.Background(), stableArtifact, currentArtifact, domain.AnalysisConfig{
		StableVersion: "1.0.0",
		Explain:       true,
		JSON:          true,
		Target:        "x86_64-unknown-linux-gnu",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--crate-type=lib",
		"--extern", "old=" + stableArtifact.LibraryPath,
		"-L" + stableArtifact.DependencySearchPath,
		"--extern", "new=" + currentArtifact.LibraryPath,
		"-L" + currentArtifact.DependencySearchPath,
		"--target", "x86_64-unknown-linux-gnu",
		"-",
	}, rec.lines(t, "args"))

	assert.Equal(t,
		"#[allow(unused_extern_crates)] extern crate old; #[allow(unused_extern_crates)] extern crate new;",
		rec.read(t, "stdin"))
	assert.Less(t,
		strings.Index(rec.read(t, "stdin"), "extern crate old"),
		strings.Index(rec.read(t, "stdin"), "extern crate new"))

	assert.Equal(t, []string{
		"RUST_SEMVER_API_GUIDELINES=false",
		"RUST_SEMVER_COMPACT=false",
		"RUST_SEMVER_CRATE_VERSION=1.0.0",
		"RUST_SEMVER_JSON=true",
		"RUST_SEMVER_VERBOSE=true",
	}, rec.lines(t, "env"))

	assert.Equal(t, "version bump: 1.0.0 -> (breaking) -> 2.0.0\n", stdout.String())
}

func TestLauncher_Launch_NoTarget(t *testing.T) {
	rec := fakeDriver(t, "")
	launcher := newLauncher(t, rec.script, "unused", &bytes.Buffer{})

	err := launcher.Launch(context.Background(), stableArtifact, currentArtifact, domain.AnalysisConfig{
		StableVersion: "0.9.1",
		Compact:       true,
		APIGuidelines: true,
	})
	require.NoError(t, err)

	args := rec.lines(t, "args")
	assert.NotContains(t, args, "--target")
	assert.Equal(t, "-", args[len(args)-1])
	assert.Contains(t, rec.lines(t, "env"), "RUST_SEMVER_COMPACT=true")
	assert.Contains(t, rec.lines(t, "env"), "RUST_SEMVER_API_GUIDELINES=true")
}

func TestLauncher_Launch_NonZeroExit(t *testing.T) {
	rec := fakeDriver(t, "exit 1\n")
	launcher := newLauncher(t, rec.script, "unused", &bytes.Buffer{})

	err := launcher.Launch(context.Background(), stableArtifact, currentArtifact, domain.AnalysisConfig{})
	require.ErrorIs(t, err, domain.ErrAnalysisFailed)
	assert.Contains(t, err.Error(), "exited with status 1")
}

func TestLauncher_Launch_SpawnFailure(t *testing.T) {
	launcher := newLauncher(t, filepath.Join(t.TempDir(), "missing-driver"), "unused", &bytes.Buffer{})

	err := launcher.Launch(context.Background(), stableArtifact, currentArtifact, domain.AnalysisConfig{})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestLauncher_LaunchPublicOnly(t *testing.T) {
	rec := fakeDriver(t, "")
	launcher := newLauncher(t, "unused", rec.script, &bytes.Buffer{})

	err := launcher.LaunchPublicOnly(context.Background(), currentArtifact, domain.AnalysisConfig{
		StableVersion: "ignored",
		Target:        "aarch64-apple-darwin",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--crate-type=lib",
		"--extern", "new=" + currentArtifact.LibraryPath,
		"-L" + currentArtifact.DependencySearchPath,
		"--target", "aarch64-apple-darwin",
		"-",
	}, rec.lines(t, "args"))
	assert.Equal(t, "#[allow(unused_extern_crates)] extern crate new;", rec.read(t, "stdin"))
}

func TestLauncher_RecordsVertex(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "success", body: ""},
		{name: "analysis failure", body: "exit 2\n", wantErr: domain.ErrAnalysisFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Info(gomock.Any()).AnyTimes()
			tel := mocks.NewMockTelemetry(ctrl)
			vertex := mocks.NewMockVertex(ctrl)

			rec := fakeDriver(t, tt.body)
			tel.EXPECT().Record(gomock.Any(), "analyze with driver").
				DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
					return ctx, vertex
				}).Times(1)
			vertex.EXPECT().Complete(gomock.Any()).Do(func(err error) {
				if tt.wantErr == nil {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, tt.wantErr)
			}).Times(1)

			launcher := driver.NewLauncher(rec.script, "unused", tel, log).WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
			err := launcher.Launch(context.Background(), stableArtifact, currentArtifact, domain.AnalysisConfig{})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDebugCommand(t *testing.T) {
	assert.Equal(t,
		"--extern old=/cache/work/foo/debug/deps/libfoo-old.rmeta -L/cache/work/foo/debug/deps "+
			"--extern new=/ws/target/debug/deps/libfoo-new.rmeta -L/ws/target/debug/deps",
		driver.DebugCommand(stableArtifact, currentArtifact))
}
