// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validity, categories, and severity
//              derivation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial test coverage

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeQuerySyntax, CodeQueryUnknownVerb, CodeQueryTooLong,
		CodeKeyNotFound, CodeKeyExists, CodeValueRequired,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOFailure,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", c)
		}
	}

	if Code("MADE_UP").IsValid() {
		t.Error("IsValid(MADE_UP) = true, want false")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeQuerySyntax, "query"},
		{CodeQueryUnknownVerb, "query"},
		{CodeQueryTooLong, "query"},
		{CodeKeyNotFound, "table"},
		{CodeKeyExists, "table"},
		{CodeValueRequired, "table"},
		{CodeConfigError, "configuration"},
		{CodeIOFailure, "io"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeIsRecoverable(t *testing.T) {
	if CodeIOFailure.IsRecoverable() {
		t.Error("IO failures must not be recoverable")
	}

	for _, c := range []Code{CodeQuerySyntax, CodeQueryUnknownVerb, CodeKeyNotFound, CodeKeyExists, CodeValueRequired} {
		if !c.IsRecoverable() {
			t.Errorf("IsRecoverable(%s) = false, want true", c)
		}
	}
}

func TestSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeKeyNotFound, SeverityLow},
		{CodeKeyExists, SeverityLow},
		{CodeValueRequired, SeverityLow},
		{CodeQuerySyntax, SeverityLow},
		{CodeQueryUnknownVerb, SeverityLow},
		{CodeConfigError, SeverityMedium},
		{CodeIOFailure, SeverityHigh},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := SeverityFromCode(tt.code); got != tt.want {
				t.Errorf("SeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.severity), got, tt.want)
		}
	}
}

func TestSeverityIsFatal(t *testing.T) {
	if SeverityLow.IsFatal() || SeverityMedium.IsFatal() {
		t.Error("low/medium severities must not be fatal")
	}
	if !SeverityHigh.IsFatal() || !SeverityCritical.IsFatal() {
		t.Error("high/critical severities must be fatal")
	}
}
