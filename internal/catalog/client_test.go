package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/workflow-things/providers/internal/manifest"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected BaseURL to be http://localhost:8080, got %s", client.BaseURL)
	}

	if client.HTTPClient == nil {
		t.Error("expected HTTPClient to be initialized")
	}

	if client.HTTPClient.Timeout.Seconds() != 30 {
		t.Errorf("expected timeout to be 30s, got %v", client.HTTPClient.Timeout)
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customClient := &http.Client{}
	client := NewClientWithHTTPClient("http://example.com", customClient)

	if client.BaseURL != "http://example.com" {
		t.Errorf("expected BaseURL to be http://example.com, got %s", client.BaseURL)
	}

	if client.HTTPClient != customClient {
		t.Error("expected HTTPClient to be the custom client")
	}
}

func TestFetchManifests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/provider-manifests" {
			t.Errorf("expected path /api/v1/provider-manifests, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET method, got %s", r.Method)
		}

		response := ManifestList{
			APIVersion: manifest.DefaultAPIVersion,
			Kind:       "ProviderManifestList",
			Items: []manifest.ProviderManifest{
				{
					APIVersion: manifest.DefaultAPIVersion,
					Kind:       manifest.DefaultKind,
					Name:       "amazon",
					Integrations: []manifest.Integration{
						{Name: "amazon-s3", Tags: []string{"aws"}},
					},
					Hooks: []manifest.Binding{
						{Integration: "amazon-s3", Modules: []string{"pkg/hooks/s3"}},
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	manifests, err := client.FetchManifests()
	if err != nil {
		t.Fatalf("FetchManifests: %v", err)
	}

	if len(manifests) != 1 {
		t.Fatalf("expected 1 manifest, got %d", len(manifests))
	}
	if manifests[0].Name != "amazon" {
		t.Errorf("expected manifest amazon, got %s", manifests[0].Name)
	}
	if len(manifests[0].Integrations) != 1 || manifests[0].Integrations[0].Name != "amazon-s3" {
		t.Errorf("unexpected integrations: %+v", manifests[0].Integrations)
	}
}

func TestFetchManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/provider-manifests/google" {
			t.Errorf("expected path /api/v1/provider-manifests/google, got %s", r.URL.Path)
		}

		m := manifest.ProviderManifest{
			Name:         "google",
			Integrations: []manifest.Integration{{Name: "google-cloud-storage"}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	m, err := client.FetchManifest("google")
	if err != nil {
		t.Fatalf("FetchManifest: %v", err)
	}
	if m.Name != "google" {
		t.Errorf("expected manifest google, got %s", m.Name)
	}
}

func TestFetchManifestsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchManifests(); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
