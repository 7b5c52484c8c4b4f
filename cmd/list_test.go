package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/workflow-things/providers/internal/manifest"
	"github.com/workflow-things/providers/internal/registry"
)

func testRegistry(t *testing.T) (*registry.Registry, []manifest.Integration) {
	t.Helper()

	m := &manifest.ProviderManifest{
		Name: "amazon",
		Integrations: []manifest.Integration{
			{
				Name:           "amazon-s3",
				DisplayName:    "Amazon S3",
				ExternalDocURL: "https://aws.amazon.com/s3/",
				Tags:           []string{"aws", "storage"},
			},
			{
				Name:        "amazon-sqs",
				DisplayName: "Amazon SQS",
				Tags:        []string{"aws", "messaging"},
			},
		},
		Operators: []manifest.Binding{
			{Integration: "amazon-s3", Modules: []string{"pkg/operators/s3"}},
		},
		Hooks: []manifest.Binding{
			{Integration: "amazon-sqs", Modules: []string{"pkg/hooks/sqs"}},
		},
	}

	reg, err := registry.Build(m)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return reg, m.Integrations
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestPrintIntegrationsTable(t *testing.T) {
	reg, entries := testRegistry(t)

	output := captureStdout(t, func() {
		printIntegrationsTable(reg, entries)
	})

	headers := []string{"NAME", "DISPLAY NAME", "TAGS", "OPERATORS", "HOOKS", "SENSORS", "DOC URL"}
	for _, h := range headers {
		if !strings.Contains(output, h) {
			t.Errorf("table output should contain header %q", h)
		}
	}

	dataChecks := []string{"amazon-s3", "Amazon S3", "aws,storage", "amazon-sqs", "https://aws.amazon.com/s3/"}
	for _, d := range dataChecks {
		if !strings.Contains(output, d) {
			t.Errorf("table output should contain %q", d)
		}
	}
}

func TestPrintIntegrationsJSON(t *testing.T) {
	_, entries := testRegistry(t)

	output := captureStdout(t, func() {
		printIntegrationsJSON(entries)
	})

	var parsed []manifest.Integration
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}

	if len(parsed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(parsed))
	}
	if parsed[0].Name != "amazon-s3" {
		t.Errorf("expected first entry amazon-s3, got %s", parsed[0].Name)
	}
	if parsed[1].Name != "amazon-sqs" {
		t.Errorf("expected second entry amazon-sqs, got %s", parsed[1].Name)
	}
}

func TestPrintIntegrationsYAML(t *testing.T) {
	_, entries := testRegistry(t)

	output := captureStdout(t, func() {
		printIntegrationsYAML(entries)
	})

	if !strings.Contains(output, "integration-name: amazon-s3") {
		t.Errorf("YAML output should use declarative field names, got:\n%s", output)
	}
}
