package registry

import (
	"testing"
)

type fixed struct{ seed int64 }

func (fixed) ID() string        { return "test-fixed" }
func (fixed) Title() string     { return "Always zero" }
func (fixed) Next(_, _ int) int { return 0 }

func TestRegisterCreateList(t *testing.T) {
	Register("test-fixed", func(seed int64) Selector { return fixed{seed: seed} })

	if !Exists("test-fixed") {
		t.Fatal("expected selector to exist after Register")
	}

	s, err := Create("test-fixed", 7)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f, ok := s.(fixed); !ok || f.seed != 7 {
		t.Errorf("factory did not receive seed, got %#v", s)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-fixed" {
			found = true
			if info.Title != "Always zero" {
				t.Errorf("unexpected title %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() missing registered selector")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-selector", 0); err == nil {
		t.Error("expected error for unknown selector")
	}
	if Exists("no-such-selector") {
		t.Error("Exists should be false for unknown selector")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(int64) Selector { return fixed{} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func(int64) Selector { return fixed{} })
}
