// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, and
//              metadata accessors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test coverage

package error

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("no entry found for key = %s", "foo")
	want := "no entry found for key = foo"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("underlying failure"),
			message: "reading input",
			wantMsg: "reading input: underlying failure",
		},
		{
			name:    "wrap rbdb error",
			err:     New("invalid command type").WithCode(CodeQueryUnknownVerb),
			message: "processing line",
			wantMsg: "processing line: invalid command type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New("not enough arguments").WithCode(CodeQuerySyntax)
	wrapped := Wrap(inner, "building command")

	if wrapped.Code() != CodeQuerySyntax {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeQuerySyntax)
	}
	if wrapped.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", wrapped.Severity(), SeverityLow)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is() should find the wrapped error")
	}
}

func TestWithCode(t *testing.T) {
	err := New("unknown key").WithCode(CodeKeyNotFound)

	if err.Code() != CodeKeyNotFound {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeKeyNotFound)
	}

	// Code assignment derives severity when none was set explicitly
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestWithSeverityExplicit(t *testing.T) {
	err := New("stream closed").WithSeverity(SeverityHigh).WithCode(CodeIOFailure)

	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithDetailAndOperation(t *testing.T) {
	err := New("config file not found").
		WithCode(CodeMissingConfig).
		WithOperation("config.Load").
		WithDetail("filePath", "configs/rbdb.toml")

	if err.Operation() != "config.Load" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "config.Load")
	}

	details := err.Details()
	if details["filePath"] != "configs/rbdb.toml" {
		t.Errorf("Details()[filePath] = %v, want %q", details["filePath"], "configs/rbdb.toml")
	}

	// Details() must return a copy
	details["filePath"] = "mutated"
	if err.Details()["filePath"] != "configs/rbdb.toml" {
		t.Error("Details() should return a copy, not the internal map")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("disk gone")
	mid := Wrap(root, "reading config")
	top := Wrap(mid, "starting session")

	if got := top.RootCause(); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}
}

func TestString(t *testing.T) {
	err := New("key foo already exists").
		WithCode(CodeKeyExists).
		WithOperation("executor.Insert")

	s := err.String()
	for _, want := range []string{"key foo already exists", "KEY_EXISTS", "low", "executor.Insert"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("no entry").WithCode(CodeKeyNotFound)

	if !HasCode(err, CodeKeyNotFound) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(err, CodeKeyExists) {
		t.Error("HasCode() = true for wrong code")
	}
	if HasCode(errors.New("foreign"), CodeKeyNotFound) {
		t.Error("HasCode() = true for foreign error")
	}

	if got := GetCode(err); got != CodeKeyNotFound {
		t.Errorf("GetCode() = %v, want %v", got, CodeKeyNotFound)
	}
	if got := GetCode(errors.New("foreign")); got != CodeUnknown {
		t.Errorf("GetCode(foreign) = %v, want %v", got, CodeUnknown)
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(New("x").WithCode(CodeIOFailure)); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
	if got := GetSeverity(errors.New("foreign")); got != SeverityMedium {
		t.Errorf("GetSeverity(foreign) = %v, want %v", got, SeverityMedium)
	}
}
