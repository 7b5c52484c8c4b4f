package registry

import (
	"errors"
	"reflect"
	"testing"
)

type fakeHook struct {
	endpoint string
}

func TestFactoriesRegisterAndNew(t *testing.T) {
	f := NewFactories()

	err := f.Register("pkg/hooks/s3", func(config map[string]any) (any, error) {
		endpoint, _ := config["endpoint"].(string)
		return &fakeHook{endpoint: endpoint}, nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	impl, err := f.New("pkg/hooks/s3", map[string]any{"endpoint": "s3.aws"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hook, ok := impl.(*fakeHook)
	if !ok || hook.endpoint != "s3.aws" {
		t.Errorf("constructor did not receive config: %+v", impl)
	}
}

func TestFactoriesDuplicateRegister(t *testing.T) {
	f := NewFactories()
	ctor := func(map[string]any) (any, error) { return nil, nil }

	if err := f.Register("pkg/hooks/s3", ctor); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := f.Register("pkg/hooks/s3", ctor); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestFactoriesNewUnregistered(t *testing.T) {
	f := NewFactories()

	_, err := f.New("pkg/hooks/unknown", nil)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFactoriesUnbound(t *testing.T) {
	reg, err := Build(amazonManifest())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	f := NewFactories()
	for _, module := range []string{
		"pkg/operators/s3_copy",
		"pkg/operators/s3_delete",
		"pkg/operators/s3_list",
		"pkg/hooks/s3",
	} {
		if err := f.Register(module, func(map[string]any) (any, error) { return nil, nil }); err != nil {
			t.Fatalf("Register %s: %v", module, err)
		}
	}

	got := f.Unbound(reg)
	want := []string{"pkg/transfers/s3_to_sqs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected unbound %v, got %v", want, got)
	}

	if err := f.Register("pkg/transfers/s3_to_sqs", func(map[string]any) (any, error) { return nil, nil }); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := f.Unbound(reg); len(got) != 0 {
		t.Errorf("expected no unbound modules, got %v", got)
	}
}
