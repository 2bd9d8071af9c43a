// File: executor_test.go
// Title: Executor Tests
// Description: Tests for per-verb execution semantics: success texts, warning
//              codes, mutation rules, and the insert-overwrites behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test coverage

package executor

import (
	"io"
	"testing"

	rbdberror "github.com/msto63/rbdb/internal/core/error"
	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/query"
	"github.com/msto63/rbdb/internal/store"
)

func newTestExecutor() *Executor {
	return New(Options{
		Logger: rbdblog.NewWithConfig(rbdblog.Config{
			Level:  rbdblog.LevelError,
			Output: io.Discard,
		}),
	})
}

func insert(key, value string) *query.Command {
	return &query.Command{Kind: query.KindInsert, Key: key, Value: value, HasValue: true}
}

func sel(key string) *query.Command {
	return &query.Command{Kind: query.KindSelect, Key: key}
}

func update(key, value string) *query.Command {
	return &query.Command{Kind: query.KindUpdate, Key: key, Value: value, HasValue: true}
}

func del(key string) *query.Command {
	return &query.Command{Kind: query.KindDelete, Key: key}
}

func mustExecute(t *testing.T, e *Executor, cmd *query.Command, table *store.Table) *Result {
	t.Helper()
	result, err := e.Execute(cmd, table)
	if err != nil {
		t.Fatalf("Execute(%v) error = %v", cmd, err)
	}
	return result
}

func TestInsert(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	result := mustExecute(t, e, insert("some_key", "some_value"), table)

	want := "SUCCESS: Inserted some_key:some_value into database"
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	value, ok := table.Get("some_key")
	if !ok || value != "some_value" {
		t.Errorf("table entry = %q (ok=%v), want some_value", value, ok)
	}
}

func TestInsertExistingKeyWarnsButOverwrites(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("k", "old")

	result := mustExecute(t, e, insert("k", "new"), table)

	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	if result.Warnings[0].Code != rbdberror.CodeKeyExists {
		t.Errorf("warning code = %v, want %v", result.Warnings[0].Code, rbdberror.CodeKeyExists)
	}
	if result.Warnings[0].Message != "Key k already exists. Use UPDATE query instead" {
		t.Errorf("warning message = %q", result.Warnings[0].Message)
	}

	// The overwrite still happens
	if result.Output != "SUCCESS: Inserted k:new into database" {
		t.Errorf("Output = %q", result.Output)
	}
	value, _ := table.Get("k")
	if value != "new" {
		t.Errorf("table entry = %q, want new", value)
	}
}

func TestInsertMissingValue(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	result := mustExecute(t, e, &query.Command{Kind: query.KindInsert, Key: "k"}, table)

	if result.Output != "" {
		t.Errorf("Output = %q, want empty", result.Output)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeValueRequired {
		t.Errorf("Warnings = %v, want one VALUE_REQUIRED", result.Warnings)
	}
	if table.Has("k") {
		t.Error("table mutated despite missing value")
	}
}

func TestInsertExistingKeyMissingValueEmitsBothWarnings(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("k", "old")

	result := mustExecute(t, e, &query.Command{Kind: query.KindInsert, Key: "k"}, table)

	if len(result.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want two", result.Warnings)
	}
	if result.Warnings[0].Code != rbdberror.CodeKeyExists {
		t.Errorf("first warning = %v, want KEY_EXISTS", result.Warnings[0].Code)
	}
	if result.Warnings[1].Code != rbdberror.CodeValueRequired {
		t.Errorf("second warning = %v, want VALUE_REQUIRED", result.Warnings[1].Code)
	}

	// No mutation without a value
	value, _ := table.Get("k")
	if value != "old" {
		t.Errorf("table entry = %q, want old", value)
	}
}

func TestSelect(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("some_key", "some_value")

	result := mustExecute(t, e, sel("some_key"), table)

	if result.Output != "some_value" {
		t.Errorf("Output = %q, want the stored value verbatim", result.Output)
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestSelectMissingKey(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	result := mustExecute(t, e, sel("ghost"), table)

	if result.Output != "" {
		t.Errorf("Output = %q, want empty", result.Output)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeKeyNotFound {
		t.Fatalf("Warnings = %v, want one KEY_NOT_FOUND", result.Warnings)
	}
	if result.Warnings[0].Message != "No entry found for key = ghost" {
		t.Errorf("warning message = %q", result.Warnings[0].Message)
	}
}

func TestUpdate(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("some_key", "some_value")

	result := mustExecute(t, e, update("some_key", "new_value"), table)

	want := "SUCCESS: Updated some_key with new_value"
	if result.Output != want {
		t.Errorf("Output = %q, want %q", result.Output, want)
	}

	value, _ := table.Get("some_key")
	if value != "new_value" {
		t.Errorf("table entry = %q, want new_value", value)
	}
}

func TestUpdateMissingKey(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	result := mustExecute(t, e, update("ghost", "v"), table)

	if result.Output != "" {
		t.Errorf("Output = %q, want empty", result.Output)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeKeyNotFound {
		t.Errorf("Warnings = %v, want one KEY_NOT_FOUND", result.Warnings)
	}
	if table.Has("ghost") {
		t.Error("update must not create missing keys")
	}
}

func TestUpdateMissingValue(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("k", "old")

	result := mustExecute(t, e, &query.Command{Kind: query.KindUpdate, Key: "k"}, table)

	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeValueRequired {
		t.Errorf("Warnings = %v, want one VALUE_REQUIRED", result.Warnings)
	}

	value, _ := table.Get("k")
	if value != "old" {
		t.Errorf("table entry = %q, want unchanged old", value)
	}
}

func TestDelete(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("some_key", "some_value")

	result := mustExecute(t, e, del("some_key"), table)

	if result.Output != "SUCCESS: Deleted some_key" {
		t.Errorf("Output = %q", result.Output)
	}
	if table.Has("some_key") {
		t.Error("key still present after delete")
	}
}

func TestDeleteIsIdempotentlySafe(t *testing.T) {
	e := newTestExecutor()
	table := store.New()
	table.Set("k", "v")

	mustExecute(t, e, del("k"), table)
	result := mustExecute(t, e, del("k"), table)

	if result.Output != "" {
		t.Errorf("second delete Output = %q, want empty", result.Output)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeKeyNotFound {
		t.Errorf("second delete Warnings = %v, want one KEY_NOT_FOUND", result.Warnings)
	}
}

func TestInsertSelectRoundTrip(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	mustExecute(t, e, insert("a", "1"), table)
	result := mustExecute(t, e, sel("a"), table)

	if result.Output != "1" {
		t.Errorf("round-trip Output = %q, want 1", result.Output)
	}
}

func TestLiteralScenario(t *testing.T) {
	e := newTestExecutor()
	table := store.New()

	result := mustExecute(t, e, insert("foo", "bar"), table)
	if result.Output != "SUCCESS: Inserted foo:bar into database" {
		t.Errorf("insert Output = %q", result.Output)
	}

	result = mustExecute(t, e, sel("foo"), table)
	if result.Output != "bar" {
		t.Errorf("select Output = %q, want bar", result.Output)
	}

	result = mustExecute(t, e, del("foo"), table)
	if result.Output != "SUCCESS: Deleted foo" {
		t.Errorf("delete Output = %q", result.Output)
	}

	result = mustExecute(t, e, sel("foo"), table)
	if result.Output != "" {
		t.Errorf("final select Output = %q, want empty", result.Output)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != rbdberror.CodeKeyNotFound {
		t.Errorf("final select Warnings = %v, want one KEY_NOT_FOUND", result.Warnings)
	}
}

func TestExecuteNilCommand(t *testing.T) {
	e := newTestExecutor()

	_, err := e.Execute(nil, store.New())
	if err == nil {
		t.Fatal("Execute(nil, table) expected error")
	}
	if !rbdberror.HasCode(err, rbdberror.CodeInternal) {
		t.Errorf("error code = %v, want INTERNAL", rbdberror.GetCode(err))
	}
}

func TestExecuteNilTable(t *testing.T) {
	e := newTestExecutor()

	_, err := e.Execute(sel("x"), nil)
	if err == nil {
		t.Fatal("Execute(cmd, nil) expected error")
	}
	if !rbdberror.HasCode(err, rbdberror.CodeInternal) {
		t.Errorf("error code = %v, want INTERNAL", rbdberror.GetCode(err))
	}
}
