package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleManifest() *ProviderManifest {
	return &ProviderManifest{
		APIVersion:  DefaultAPIVersion,
		Kind:        DefaultKind,
		Name:        "amazon",
		DisplayName: "Amazon",
		Integrations: []Integration{
			{
				Name:           "amazon-s3",
				DisplayName:    "Amazon S3",
				ExternalDocURL: "https://aws.amazon.com/s3/",
				Logo:           "/integration-logos/aws/s3.png",
				HowToGuides:    []string{"/docs/howto/s3"},
				Tags:           []string{"aws", "storage"},
			},
			{
				Name:        "amazon-sqs",
				DisplayName: "Amazon SQS",
				Tags:        []string{"aws", "messaging"},
			},
		},
		Operators: []Binding{
			{Integration: "amazon-s3", Modules: []string{"pkg/operators/s3"}},
		},
		Hooks: []Binding{
			{
				Integration: "amazon-s3",
				Modules:     []string{"pkg/hooks/s3"},
				Deprecated: []Alias{
					{Module: "pkg/contrib/hooks/s3", SupersededBy: "pkg/hooks/s3"},
				},
			},
			{Integration: "amazon-sqs", Modules: []string{"pkg/hooks/sqs"}},
		},
		Sensors: []Binding{
			{Integration: "amazon-sqs", Modules: []string{"pkg/sensors/sqs"}},
		},
		Transfers: []Transfer{
			{Source: "amazon-s3", Target: "amazon-sqs", Module: "pkg/transfers/s3_to_sqs"},
		},
		ConnectionTypes: []ConnectionType{
			{ConnectionType: "aws", Hook: "pkg/hooks/base_aws"},
		},
		SecretsBackends: []Binding{
			{Integration: "amazon-s3", Modules: []string{"pkg/secrets/ssm"}},
		},
		Logging: []Binding{
			{Integration: "amazon-s3", Modules: []string{"pkg/log/s3_task_handler"}},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amazon.yaml")

	m := sampleManifest()
	if err := Save(path, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(m, loaded) {
		t.Errorf("round trip changed manifest:\nbefore: %+v\nafter:  %+v", m, loaded)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/provider.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFieldNames(t *testing.T) {
	doc := `
apiVersion: providers.workflow-things.io/v1alpha1
kind: ProviderManifest
name: google
integrations:
  - integration-name: google-cloud-storage
    display-name: Google Cloud Storage
    external-doc-url: https://cloud.google.com/storage/
    how-to-guide:
      - /docs/howto/gcs
    tags: [gcp, storage]
hooks:
  - integration-name: google-cloud-storage
    modules:
      - pkg/hooks/gcs
connection-types:
  - connection-type: google_cloud_platform
    hook: pkg/hooks/gcp_base
secrets-backends:
  - integration-name: google-cloud-storage
    modules:
      - pkg/secrets/secret_manager
`

	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Integrations[0].Name != "google-cloud-storage" {
		t.Errorf("expected integration-name to map to Name, got %q", m.Integrations[0].Name)
	}
	if m.Integrations[0].ExternalDocURL != "https://cloud.google.com/storage/" {
		t.Errorf("unexpected doc url: %q", m.Integrations[0].ExternalDocURL)
	}
	if len(m.Hooks) != 1 || m.Hooks[0].Modules[0] != "pkg/hooks/gcs" {
		t.Errorf("unexpected hooks: %+v", m.Hooks)
	}
	if m.ConnectionTypes[0].ConnectionType != "google_cloud_platform" {
		t.Errorf("unexpected connection type: %+v", m.ConnectionTypes[0])
	}
	if len(m.SecretsBackends) != 1 {
		t.Errorf("expected 1 secrets backend, got %d", len(m.SecretsBackends))
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("integrations: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAddIntegrationReplace(t *testing.T) {
	m := New("test")
	AddIntegration(m, Integration{Name: "a", DisplayName: "first"})
	AddIntegration(m, Integration{Name: "a", DisplayName: "second"})

	if len(m.Integrations) != 1 {
		t.Fatalf("expected 1 integration after replace, got %d", len(m.Integrations))
	}
	if m.Integrations[0].DisplayName != "second" {
		t.Errorf("expected displayName second, got %s", m.Integrations[0].DisplayName)
	}
}

func TestRemoveIntegration(t *testing.T) {
	m := sampleManifest()

	if err := RemoveIntegration(m, "amazon-s3"); err != nil {
		t.Fatalf("RemoveIntegration: %v", err)
	}

	if FindIntegration(m, "amazon-s3") != nil {
		t.Error("integration still present after removal")
	}
	if len(m.Operators) != 0 {
		t.Errorf("expected owned operator bindings to be removed, got %+v", m.Operators)
	}
	if len(m.Hooks) != 1 || m.Hooks[0].Integration != "amazon-sqs" {
		t.Errorf("expected only amazon-sqs hooks to remain, got %+v", m.Hooks)
	}
	if len(m.Transfers) != 0 {
		t.Errorf("expected transfers touching amazon-s3 to be removed, got %+v", m.Transfers)
	}
	if len(m.SecretsBackends) != 0 || len(m.Logging) != 0 {
		t.Error("expected owned secrets-backend and logging bindings to be removed")
	}

	// The edited manifest must still validate
	if err := Validate(m); err != nil {
		t.Errorf("manifest invalid after removal: %v", err)
	}
}

func TestRemoveIntegrationNotFound(t *testing.T) {
	m := New("test")
	if err := RemoveIntegration(m, "nonexistent"); err == nil {
		t.Fatal("expected error for unknown integration")
	}
}

func TestFilterIntegrations(t *testing.T) {
	m := sampleManifest()

	storage := FilterIntegrations(m, "storage")
	if len(storage) != 1 || storage[0].Name != "amazon-s3" {
		t.Errorf("expected only amazon-s3 tagged storage, got %+v", storage)
	}

	all := FilterIntegrations(m, "")
	if len(all) != 2 {
		t.Errorf("expected wildcard to return all integrations, got %d", len(all))
	}

	none := FilterIntegrations(m, "database")
	if len(none) != 0 {
		t.Errorf("expected no matches for tag database, got %+v", none)
	}
}

func TestMarshalSetsDefaults(t *testing.T) {
	m := &ProviderManifest{
		Name:         "minimal",
		Integrations: []Integration{{Name: "x"}},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	if err := Save(path, m); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	loaded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if loaded.APIVersion != DefaultAPIVersion {
		t.Errorf("expected apiVersion %s, got %s", DefaultAPIVersion, loaded.APIVersion)
	}
	if loaded.Kind != DefaultKind {
		t.Errorf("expected kind %s, got %s", DefaultKind, loaded.Kind)
	}
}
