package cargo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail bounds how much of cargo's stderr is attached to a build error.
const stderrTail = 4096

// Builder implements ports.Builder by running cargo check.
type Builder struct {
	cargo  string
	logger ports.Logger
}

var _ ports.Builder = (*Builder)(nil)

// NewBuilder creates a builder running the given cargo executable.
func NewBuilder(cargo string, logger ports.Logger) *Builder {
	return &Builder{
		cargo:  cargo,
		logger: logger,
	}
}

// Build runs one cargo check pass. The lane tag is injected through
// RUSTFLAGS on the child only; the process environment is left untouched.
func (b *Builder) Build(ctx context.Context, req domain.BuildRequest, stdout io.Writer) (*domain.BuildOutput, error) {
	if req.Workspace == nil {
		return nil, fmt.Errorf("%w: %s has no workspace", domain.ErrBuildFailed, req.Package)
	}

	//nolint:gosec // cargo path comes from the user's configuration
	cmd := exec.CommandContext(ctx, b.cargo, checkArgs(req)...)
	cmd.Dir = req.Workspace.Root
	cmd.Env = resolveEnvironment(os.Environ(), map[string]string{
		"RUSTFLAGS":  "-C metadata=" + req.Tag,
		targetDirEnv: req.Workspace.TargetDir,
	})

	if stdout == nil {
		stdout = io.Discard
	}
	cmd.Stdout = stdout

	tail := &tailBuffer{limit: stderrTail}
	cmd.Stderr = io.MultiWriter(tail, &logWriter{logger: b.logger})

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		buildErr := fmt.Errorf("%w: cargo check of %s: %w", domain.ErrBuildFailed, req.Package, err)
		if stderr := strings.TrimSpace(tail.String()); stderr != "" {
			buildErr = fmt.Errorf("%w\n%s", buildErr, stderr)
		}
		return nil, zerr.With(zerr.With(buildErr, "package", req.Package), "exit_code", exitCode)
	}

	return &domain.BuildOutput{DepsDir: depsDir(req.Workspace.TargetDir, req.Options.Target)}, nil
}

// checkArgs builds the cargo command line for req.
func checkArgs(req domain.BuildRequest) []string {
	args := []string{"check", "--manifest-path", req.Workspace.ManifestPath, "--lib"}
	if req.Plan {
		args = append(args, "--build-plan", "-Z", "unstable-options", "--quiet")
	}

	opts := req.Options
	if opts.Target != "" {
		args = append(args, "--target", opts.Target)
	}
	if len(opts.Features) > 0 {
		args = append(args, "--features", strings.Join(opts.Features, ","))
	}
	if opts.AllFeatures {
		args = append(args, "--all-features")
	}
	if opts.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	return args
}

// depsDir is the dependency search directory cargo uses for the platform.
func depsDir(target, triple string) string {
	if triple != "" {
		return filepath.Join(target, triple, "debug", "deps")
	}
	return filepath.Join(target, "debug", "deps")
}

// resolveEnvironment overlays overrides on the system environment.
// The result is sorted so children see a stable environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
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

// logWriter forwards cargo's progress output line by line.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
