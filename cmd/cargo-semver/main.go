// Package main is the entry point for cargo-semver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/rust-dev-tools/rust-semverver/cmd/cargo-semver/commands"
	"github.com/rust-dev-tools/rust-semverver/internal/app"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	_ "github.com/rust-dev-tools/rust-semverver/internal/wiring"
)

// levelSetter is implemented by loggers whose verbosity can change at runtime.
type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()
	defer func() {
		if err := components.Resolver.Cleanup(); err != nil {
			components.Logger.Warn("failed to remove ephemeral target directories: " + err.Error())
		}
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(subcommandArgs(args))
	cli.SetQuietHook(func() {
		if l, ok := components.Logger.(levelSetter); ok {
			l.SetLevel(domain.LogLevelWarn)
		}
	})

	if err := cli.Execute(ctx); err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}

// subcommandArgs drops the leading "semver" cargo passes when the binary is
// invoked as `cargo semver`.
func subcommandArgs(args []string) []string {
	if len(args) > 0 && args[0] == "semver" {
		return args[1:]
	}
	return args
}
