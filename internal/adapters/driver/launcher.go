// Package driver launches the analysis drivers on compiled artifacts.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Names of the environment channels read by the comparing driver.
const (
	EnvCrateVersion  = "RUST_SEMVER_CRATE_VERSION"
	EnvVerbose       = "RUST_SEMVER_VERBOSE"
	EnvCompact       = "RUST_SEMVER_COMPACT"
	EnvJSON          = "RUST_SEMVER_JSON"
	EnvAPIGuidelines = "RUST_SEMVER_API_GUIDELINES"
)

// The stubs declare the artifacts in a fixed order; the driver binds the
// first direct declaration to old and the second to new.
const (
	compareStub = "#[allow(unused_extern_crates)] extern crate old; " +
		"#[allow(unused_extern_crates)] extern crate new;"
	publicStub = "#[allow(unused_extern_crates)] extern crate new;"
)

// Launcher implements ports.AnalysisLauncher by spawning the driver executables.
type Launcher struct {
	driver       string
	publicDriver string
	stdout       io.Writer
	stderr       io.Writer
	telemetry    ports.Telemetry
	logger       ports.Logger
}

var _ ports.AnalysisLauncher = (*Launcher)(nil)

// NewLauncher creates a launcher whose drivers inherit the process's
// standard output and error. Every driver run is recorded as a vertex.
func NewLauncher(driver, publicDriver string, telemetry ports.Telemetry, logger ports.Logger) *Launcher {
	return &Launcher{
		driver:       driver,
		publicDriver: publicDriver,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// WithOutput returns a copy of the launcher writing driver output to stdout and stderr.
func (l *Launcher) WithOutput(stdout, stderr io.Writer) *Launcher {
	c := *l
	c.stdout = stdout
	c.stderr = stderr
	return &c
}

// Launch runs the comparing driver and blocks until it exits. The driver's
// report goes straight to the launcher's output; it is never inspected here.
// There is no timeout: a hung driver hangs the caller.
func (l *Launcher) Launch(
	ctx context.Context,
	oldArtifact, newArtifact domain.ResolvedArtifact,
	cfg domain.AnalysisConfig,
) error {
	args := append(bindArgs(
		binding{name: "old", artifact: oldArtifact},
		binding{name: "new", artifact: newArtifact},
	), targetArgs(cfg.Target)...)
	args = append(args, "-")

	return l.run(ctx, l.driver, args, compareStub, analysisEnv(cfg))
}

// LaunchPublicOnly runs the public surface driver on a single artifact bound as new.
func (l *Launcher) LaunchPublicOnly(ctx context.Context, artifact domain.ResolvedArtifact, cfg domain.AnalysisConfig) error {
	args := append(bindArgs(binding{name: "new", artifact: artifact}), targetArgs(cfg.Target)...)
	args = append(args, "-")

	return l.run(ctx, l.publicDriver, args, publicStub, nil)
}

// DebugCommand renders the artifact bindings the comparing driver would receive.
func DebugCommand(oldArtifact, newArtifact domain.ResolvedArtifact) string {
	return fmt.Sprintf("--extern old=%s -L%s --extern new=%s -L%s",
		oldArtifact.LibraryPath, oldArtifact.DependencySearchPath,
		newArtifact.LibraryPath, newArtifact.DependencySearchPath)
}

type binding struct {
	name     string
	artifact domain.ResolvedArtifact
}

// bindArgs restricts the driver to library checking and binds each artifact
// with its dependency search path, in the order given.
func bindArgs(bindings ...binding) []string {
	args := []string{"--crate-type=lib"}
	for _, b := range bindings {
		args = append(args,
			"--extern", b.name+"="+b.artifact.LibraryPath,
			"-L"+b.artifact.DependencySearchPath,
		)
	}
	return args
}

func targetArgs(target string) []string {
	if target == "" {
		return nil
	}
	return []string{"--target", target}
}

// analysisEnv serializes the analysis configuration onto the environment channels.
func analysisEnv(cfg domain.AnalysisConfig) map[string]string {
	return map[string]string{
		EnvCrateVersion:  cfg.StableVersion,
		EnvVerbose:       strconv.FormatBool(cfg.Explain),
		EnvCompact:       strconv.FormatBool(cfg.Compact),
		EnvJSON:          strconv.FormatBool(cfg.JSON),
		EnvAPIGuidelines: strconv.FormatBool(cfg.APIGuidelines),
	}
}

// run records the driver run as a vertex completed with its outcome. The
// context only scopes the vertex; the child itself is never cancelled.
func (l *Launcher) run(ctx context.Context, driver string, args []string, stub string, env map[string]string) (err error) {
	_, vertex := l.telemetry.Record(ctx, "analyze with "+filepath.Base(driver))
	defer func() {
		vertex.Complete(err)
	}()

	return l.spawn(driver, args, stub, env)
}

func (l *Launcher) spawn(driver string, args []string, stub string, env map[string]string) error {
	//nolint:gosec,noctx // driver path comes from configuration; the run is not cancellable
	cmd := exec.Command(driver, args...)
	cmd.Env = mergeEnvironment(os.Environ(), env)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrPipeUnavailable, driver, err), "driver", driver)
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrSpawnFailed, driver, err), "driver", driver)
	}
	l.logger.Info(fmt.Sprintf("running %s %s", driver, strings.Join(args, " ")))

	_, writeErr := io.WriteString(stdin, stub)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if writeErr != nil || closeErr != nil {
		pipeErr := writeErr
		if pipeErr == nil {
			pipeErr = closeErr
		}
		return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrPipeUnavailable, driver, pipeErr), "driver", driver)
	}

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			failed := fmt.Errorf("%w: %s exited with status %d", domain.ErrAnalysisFailed, driver, exitErr.ExitCode())
			return zerr.With(zerr.With(failed, "driver", driver), "exit_code", exitErr.ExitCode())
		}
		return zerr.With(fmt.Errorf("%w %s: %w", domain.ErrChildWaitFailed, driver, waitErr), "driver", driver)
	}
	return nil
}

// mergeEnvironment overlays overrides on the system environment.
func mergeEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
