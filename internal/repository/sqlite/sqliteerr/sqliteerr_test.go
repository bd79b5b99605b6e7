package sqliteerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestUniqueColumn(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: users.email")
	column, ok := UniqueColumn(err)
	if !ok {
		t.Fatalf("expected unique violation to be recognized")
	}
	if column != "email" {
		t.Fatalf("expected email, got %q", column)
	}
}

func TestUniqueColumnWrapped(t *testing.T) {
	err := fmt.Errorf("create user: %w", errors.New("UNIQUE constraint failed: users.phone"))
	column, ok := UniqueColumn(err)
	if !ok {
		t.Fatalf("expected unique violation to be recognized")
	}
	if column != "phone" {
		t.Fatalf("expected phone, got %q", column)
	}
}

func TestUniqueColumnOtherError(t *testing.T) {
	if _, ok := UniqueColumn(errors.New("no such table: users")); ok {
		t.Fatalf("expected non-unique error to be ignored")
	}
	if _, ok := UniqueColumn(nil); ok {
		t.Fatalf("expected nil to be ignored")
	}
}
