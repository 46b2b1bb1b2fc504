// Package registry talks to a crates.io compatible package registry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/build"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/rust-dev-tools/rust-semverver/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.RegistryLookup using the registry web API.
type Client struct {
	apiBase    string
	httpClient *http.Client
}

var _ ports.RegistryLookup = (*Client)(nil)

// NewClient creates a lookup client for the registry API at apiBase.
func NewClient(apiBase string, httpClient *http.Client) *Client {
	return &Client{
		apiBase:    strings.TrimSuffix(apiBase, "/"),
		httpClient: httpClient,
	}
}

type searchResponse struct {
	Crates []searchCrate `json:"crates"`
}

type searchCrate struct {
	Name       string `json:"name"`
	MaxVersion string `json:"max_version"`
}

// FindLatestStable searches the registry for name and returns the max
// version of the first result, provided its name matches exactly.
func (c *Client) FindLatestStable(ctx context.Context, name string) (string, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("per_page", "1")
	endpoint := c.apiBase + "/api/v1/crates?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", unreachable(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", badStatus(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", unreachable(endpoint, err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", zerr.With(fmt.Errorf("%w: malformed search response: %w", domain.ErrRegistryUnavailable, err), "url", endpoint)
	}

	if len(result.Crates) == 0 || result.Crates[0].Name != name || result.Crates[0].MaxVersion == "" {
		return "", zerr.With(fmt.Errorf("%w: %s", domain.ErrNoMatch, name), "name", name)
	}
	return result.Crates[0].MaxVersion, nil
}

// unreachable reports a transport failure talking to endpoint.
func unreachable(endpoint string, err error) error {
	return zerr.With(fmt.Errorf("%w: %s: %w", domain.ErrRegistryUnavailable, endpoint, err), "url", endpoint)
}

// badStatus reports an unexpected HTTP status from endpoint.
func badStatus(endpoint string, code int) error {
	failed := fmt.Errorf("%w: %s returned status %d", domain.ErrRegistryUnavailable, endpoint, code)
	return zerr.With(zerr.With(failed, "url", endpoint), "status_code", code)
}

func userAgent() string {
	return fmt.Sprintf("rust-semverver %s", build.Version)
}
