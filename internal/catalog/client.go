package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/workflow-things/providers/internal/manifest"
)

// Client is the API client for a provider-manifest catalog
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// ManifestList is the catalog response listing provider manifests
type ManifestList struct {
	APIVersion string                      `json:"apiVersion"`
	Kind       string                      `json:"kind"`
	Items      []manifest.ProviderManifest `json:"items"`
}

// NewClient creates a new catalog API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithHTTPClient creates a new catalog API client with a custom HTTP client
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
	}
}

// FetchManifests retrieves all provider manifests from the catalog
func (c *Client) FetchManifests() ([]manifest.ProviderManifest, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/api/v1/provider-manifests")
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, string(body))
	}

	var list ManifestList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return list.Items, nil
}

// FetchManifest retrieves a single provider manifest by provider name
func (c *Client) FetchManifest(name string) (*manifest.ProviderManifest, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/api/v1/provider-manifests/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog returned %d: %s", resp.StatusCode, string(body))
	}

	var m manifest.ProviderManifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &m, nil
}
