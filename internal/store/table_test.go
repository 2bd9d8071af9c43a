// File: table_test.go
// Title: Table Tests
// Description: Tests for the in-memory key-value table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test coverage

package store

import "testing"

func TestSetAndGet(t *testing.T) {
	table := New()

	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for new table", table.Len())
	}

	table.Set("a", "1")

	value, ok := table.Get("a")
	if !ok {
		t.Fatal("Get(a) ok = false, want true")
	}
	if value != "1" {
		t.Errorf("Get(a) = %q, want %q", value, "1")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestGetMissing(t *testing.T) {
	table := New()

	value, ok := table.Get("missing")
	if ok {
		t.Error("Get(missing) ok = true, want false")
	}
	if value != "" {
		t.Errorf("Get(missing) = %q, want empty", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	table := New()
	table.Set("a", "1")
	table.Set("a", "2")

	value, _ := table.Get("a")
	if value != "2" {
		t.Errorf("Get(a) = %q, want %q after overwrite", value, "2")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwrite", table.Len())
	}
}

func TestHas(t *testing.T) {
	table := New()
	table.Set("a", "1")

	if !table.Has("a") {
		t.Error("Has(a) = false, want true")
	}
	if table.Has("b") {
		t.Error("Has(b) = true, want false")
	}
}

func TestDelete(t *testing.T) {
	table := New()
	table.Set("a", "1")

	if !table.Delete("a") {
		t.Error("Delete(a) = false, want true for present key")
	}
	if table.Has("a") {
		t.Error("Has(a) = true after delete")
	}

	// Deleting again reports absence, no panic
	if table.Delete("a") {
		t.Error("Delete(a) = true, want false for absent key")
	}
}

func TestKeysAreCaseSensitive(t *testing.T) {
	table := New()
	table.Set("Key", "1")

	if table.Has("key") {
		t.Error("Has(key) = true; keys must be case-sensitive")
	}
}
