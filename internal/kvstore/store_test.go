package kvstore

import (
	"os"
	"path/filepath"
	"testing"
)

type testSnapshot struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Family string `json:"family"`
}

func TestLoadMissingKey(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var value testSnapshot
	ok, err := store.Load("missing", &value)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatalf("expected key to be absent")
	}
}

func TestRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	original := testSnapshot{Name: "Maria Silva", Email: "maria@example.com", Family: "Silva"}
	if err := store.Save("@FamCash:usuario", original); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.Save("themeMode", "dark"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Simulate an app restart.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var restored testSnapshot
	ok, err := reopened.Load("@FamCash:usuario", &restored)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Fatalf("expected key to survive reopen")
	}
	if restored != original {
		t.Fatalf("expected %+v, got %+v", original, restored)
	}

	var theme string
	ok, err = reopened.Load("themeMode", &theme)
	if err != nil || !ok {
		t.Fatalf("expected theme to survive reopen, ok=%v err=%v", ok, err)
	}
	if theme != "dark" {
		t.Fatalf("expected dark, got %q", theme)
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.Save("k", "v"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var value string
	ok, err := reopened.Load("k", &value)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatalf("expected key to be deleted")
	}
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatalf("expected error for corrupt state file")
	}
}
