package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rust-dev-tools/rust-semverver/internal/adapters/registry"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FindLatestStable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/crates", r.URL.Path)
		assert.Equal(t, "serde", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.True(t, strings.HasPrefix(r.UserAgent(), "rust-semverver "))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"crates":[{"name":"serde","max_version":"1.0.210","downloads":1}],"meta":{"total":1}}`))
	}))
	defer server.Close()

	client := registry.NewClient(server.URL+"/", server.Client())
	version, err := client.FindLatestStable(context.Background(), "serde")
	require.NoError(t, err)
	assert.Equal(t, "1.0.210", version)
}

func TestClient_FindLatestStable_NoExactMatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty result", body: `{"crates":[]}`},
		{name: "fuzzy match only", body: `{"crates":[{"name":"serde_json","max_version":"1.0.0"}]}`},
		{name: "missing version", body: `{"crates":[{"name":"serde"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := registry.NewClient(server.URL, server.Client()).FindLatestStable(context.Background(), "serde")
			require.ErrorIs(t, err, domain.ErrNoMatch)
		})
	}
}

func TestClient_FindLatestStable_Unavailable(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := registry.NewClient(server.URL, server.Client()).FindLatestStable(context.Background(), "serde")
		require.ErrorIs(t, err, domain.ErrRegistryUnavailable)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := registry.NewClient(server.URL, server.Client()).FindLatestStable(context.Background(), "serde")
		require.ErrorIs(t, err, domain.ErrRegistryUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := registry.NewClient(url, http.DefaultClient).FindLatestStable(context.Background(), "serde")
		require.ErrorIs(t, err, domain.ErrRegistryUnavailable)
	})
}
