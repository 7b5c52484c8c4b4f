package manifest

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(string(kind))
		if err != nil {
			t.Errorf("ParseKind(%q): %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("expected %q, got %q", kind, parsed)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("executor")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown kind, got %v", err)
	}
}
