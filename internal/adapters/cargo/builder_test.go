package cargo_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/adapters/cargo"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeCargo writes a cargo stand-in that records its arguments and the
// variables injected by the builder.
func fakeCargo(t *testing.T, body string) (cargoPath, argsFile, envFile string) {
	t.Helper()
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	envFile = filepath.Join(dir, "env")
	cargoPath = filepath.Join(dir, "cargo")

	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + argsFile + "\"\n" +
		"echo \"RUSTFLAGS=$RUSTFLAGS\" > \"" + envFile + "\"\n" +
		"echo \"CARGO_TARGET_DIR=$CARGO_TARGET_DIR\" >> \"" + envFile + "\"\n" +
		body
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(cargoPath, []byte(script), 0o700))
	return cargoPath, argsFile, envFile
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test fixture
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func testWorkspace(t *testing.T) *domain.Workspace {
	t.Helper()
	root := t.TempDir()
	return &domain.Workspace{
		Root:         root,
		ManifestPath: filepath.Join(root, "Cargo.toml"),
		TargetDir:    filepath.Join(root, "target"),
	}
}

func TestBuilder_PlanPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	cargoPath, argsFile, envFile := fakeCargo(t, "echo '{\"invocations\":[]}'\n")
	ws := testWorkspace(t)

	var stdout bytes.Buffer
	out, err := cargo.NewBuilder(cargoPath, log).Build(context.Background(), domain.BuildRequest{
		Workspace: ws,
		Package:   "foo",
		Tag:       "new",
		Plan:      true,
		Options: domain.BuildOptions{
			Target:            "x86_64-unknown-linux-gnu",
			Features:          []string{"serde", "std"},
			NoDefaultFeatures: true,
		},
	}, &stdout)
	require.NoError(t, err)

	assert.JSONEq(t, `{"invocations":[]}`, stdout.String())
	assert.Equal(t, filepath.Join(ws.TargetDir, "x86_64-unknown-linux-gnu", "debug", "deps"), out.DepsDir)

	assert.Equal(t, []string{
		"check", "--manifest-path", ws.ManifestPath, "--lib",
		"--build-plan", "-Z", "unstable-options", "--quiet",
		"--target", "x86_64-unknown-linux-gnu",
		"--features", "serde,std",
		"--no-default-features",
	}, readLines(t, argsFile))

	assert.Equal(t, []string{
		"RUSTFLAGS=-C metadata=new",
		"CARGO_TARGET_DIR=" + ws.TargetDir,
	}, readLines(t, envFile))
}

func TestBuilder_RealPassLogsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("Checking foo v1.0.0").Times(1)
	log.EXPECT().Info("Finished dev profile").Times(1)

	cargoPath, argsFile, envFile := fakeCargo(t, "printf 'Checking foo v1.0.0\\nFinished dev profile\\n' >&2\n")
	ws := testWorkspace(t)

	out, err := cargo.NewBuilder(cargoPath, log).Build(context.Background(), domain.BuildRequest{
		Workspace: ws,
		Package:   "foo",
		Tag:       "old",
		Options:   domain.BuildOptions{AllFeatures: true},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.TargetDir, "debug", "deps"), out.DepsDir)

	assert.Equal(t, []string{
		"check", "--manifest-path", ws.ManifestPath, "--lib", "--all-features",
	}, readLines(t, argsFile))
	assert.Contains(t, readLines(t, envFile), "RUSTFLAGS=-C metadata=old")
}

func TestBuilder_LeavesProcessEnvironmentAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	t.Setenv("RUSTFLAGS", "-C opt-level=1")
	cargoPath, _, _ := fakeCargo(t, "")

	_, err := cargo.NewBuilder(cargoPath, log).Build(context.Background(), domain.BuildRequest{
		Workspace: testWorkspace(t),
		Package:   "foo",
		Tag:       "new",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "-C opt-level=1", os.Getenv("RUSTFLAGS"))
}

func TestBuilder_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	cargoPath, _, _ := fakeCargo(t, "echo 'error: could not compile `foo`' >&2\nexit 101\n")

	_, err := cargo.NewBuilder(cargoPath, log).Build(context.Background(), domain.BuildRequest{
		Workspace: testWorkspace(t),
		Package:   "foo",
		Tag:       "new",
	}, nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "101")
	assert.Contains(t, err.Error(), "could not compile")
}

func TestBuilder_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := cargo.NewBuilder(filepath.Join(t.TempDir(), "no-cargo"), log).Build(context.Background(), domain.BuildRequest{
		Workspace: testWorkspace(t),
		Package:   "foo",
		Tag:       "new",
	}, nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}
