package buildplan_test

import (
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/engine/buildplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Unreadable(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: " \n\t"},
		{name: "truncated", input: `{"invocations":[{"package_name":"foo"`},
		{name: "malformed", input: `not json`},
		{name: "missing invocations", input: `{"inputs":[]}`},
		{name: "wrong shape", input: `{"invocations":{"package_name":"foo"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildplan.Decode([]byte(tt.input))
			require.ErrorIs(t, err, domain.ErrBuildPlanUnreadable)
		})
	}
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	input := `{
		"invocations": [
			{
				"package_name": "foo",
				"package_version": "0.1.0",
				"target_kind": ["lib"],
				"kind": "Host",
				"deps": [],
				"outputs": ["/t/debug/deps/libfoo-new.rmeta"],
				"links": {},
				"program": "rustc",
				"args": [],
				"env": {},
				"cwd": "/src/foo"
			}
		],
		"inputs": ["/src/foo/Cargo.toml"]
	}`

	plan, err := buildplan.Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, plan.Invocations, 1)

	inv := plan.Invocations[0]
	assert.Equal(t, "foo", inv.PackageName)
	assert.Equal(t, []string{"lib"}, inv.TargetKinds)
	assert.Equal(t, []string{"/t/debug/deps/libfoo-new.rmeta"}, inv.Outputs)
}

func TestDecode_EmptyInvocationList(t *testing.T) {
	plan, err := buildplan.Decode([]byte(`{"invocations":[]}`))
	require.NoError(t, err)
	assert.Empty(t, plan.Invocations)
}

func TestFindLibraryOutput(t *testing.T) {
	plan := &domain.BuildPlan{Invocations: []domain.Invocation{
		{PackageName: "serde", TargetKinds: []string{"lib"}, Outputs: []string{"/t/libserde.rmeta"}},
		{PackageName: "foo", TargetKinds: []string{"custom-build"}, Outputs: []string{"/t/build-script-build"}},
		{PackageName: "foo", TargetKinds: []string{"lib"}, Outputs: []string{}},
		{PackageName: "foo", TargetKinds: []string{"rlib", "cdylib"}, Outputs: []string{"/t/libfoo-a.rmeta", "/t/libfoo-a.so"}},
		{PackageName: "foo", TargetKinds: []string{"lib"}, Outputs: []string{"/t/libfoo-b.rmeta"}},
		{PackageName: "foo", TargetKinds: []string{"bin"}, Outputs: []string{"/t/foo"}},
	}}

	t.Run("first library-like match in plan order", func(t *testing.T) {
		out, err := buildplan.FindLibraryOutput(plan, "foo")
		require.NoError(t, err)
		assert.Equal(t, "/t/libfoo-a.rmeta", out)
	})

	t.Run("dependency names do not match", func(t *testing.T) {
		out, err := buildplan.FindLibraryOutput(plan, "serde")
		require.NoError(t, err)
		assert.Equal(t, "/t/libserde.rmeta", out)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := buildplan.FindLibraryOutput(plan, "bar")
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
		assert.Contains(t, err.Error(), "bar")
	})

	t.Run("only non-library targets", func(t *testing.T) {
		binOnly := &domain.BuildPlan{Invocations: []domain.Invocation{
			{PackageName: "tool", TargetKinds: []string{"bin"}, Outputs: []string{"/t/tool"}},
		}}
		_, err := buildplan.FindLibraryOutput(binOnly, "tool")
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})
}
