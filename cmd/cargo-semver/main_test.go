package main

import (
	"path/filepath"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/adapters/config"
	"github.com/stretchr/testify/assert"
)

func TestSubcommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "cargo subcommand", args: []string{"semver", "-S", "foo:1.0.0"}, want: []string{"-S", "foo:1.0.0"}},
		{name: "direct", args: []string{"-S", "foo:1.0.0"}, want: []string{"-S", "foo:1.0.0"}},
		{name: "empty", args: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, subcommandArgs(tt.args))
		})
	}
}

func TestRun(t *testing.T) {
	t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{name: "version", args: []string{"semver", "version"}, expectedExit: 0},
		{name: "conflicting stable flags", args: []string{"-s", ".", "-S", "foo:0.1.0"}, expectedExit: 1},
		{name: "invalid package spec", args: []string{"-C", "foo", "--offline"}, expectedExit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
