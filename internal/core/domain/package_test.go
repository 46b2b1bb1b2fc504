package domain_test

import (
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    domain.NameAndVersion
		wantErr bool
	}{
		{spec: "foo:1.2.3", want: domain.NameAndVersion{Name: "foo", Version: "1.2.3"}},
		{spec: "serde_json:1.0.0-rc.1", want: domain.NameAndVersion{Name: "serde_json", Version: "1.0.0-rc.1"}},
		{spec: "foo", wantErr: true},
		{spec: "foo:", wantErr: true},
		{spec: ":1.0.0", wantErr: true},
		{spec: "foo:1:2", wantErr: true},
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := domain.ParsePackageSpec(tt.spec)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidPackageSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLibraryKind(t *testing.T) {
	for _, kind := range []string{"lib", "rlib", "dylib", "cdylib", "staticlib"} {
		assert.True(t, domain.IsLibraryKind(kind), kind)
	}
	for _, kind := range []string{"bin", "test", "bench", "example", "proc-macro", "custom-build"} {
		assert.False(t, domain.IsLibraryKind(kind), kind)
	}
}

func TestPackageMetadata_HasLibrary(t *testing.T) {
	pkg := &domain.PackageMetadata{
		Name: "foo",
		Targets: []domain.Target{
			{Name: "foo", Kinds: []string{"bin"}},
		},
	}
	assert.False(t, pkg.HasLibrary())

	pkg.Targets = append(pkg.Targets, domain.Target{Name: "foo", Kinds: []string{"cdylib", "rlib"}})
	assert.True(t, pkg.HasLibrary())

	macro := &domain.PackageMetadata{
		Name:    "derive",
		Targets: []domain.Target{{Name: "derive", Kinds: []string{domain.ProcMacroKind}}},
	}
	assert.True(t, macro.HasLibrary())
}

func TestPackageID_String(t *testing.T) {
	id := domain.PackageID{
		Name:    "foo",
		Version: "0.1.0",
		Source:  domain.SourceID{Kind: domain.SourceKindRegistry, URL: domain.DefaultRegistryIndex},
	}
	assert.Equal(t, "foo v0.1.0 (registry+https://index.crates.io)", id.String())
}
