// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across RBDB. Codes let callers branch on the
//              error category instead of matching message strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with query and table codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across RBDB
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Query parsing
	CodeQuerySyntax      Code = "QUERY_SYNTAX"
	CodeQueryUnknownVerb Code = "QUERY_UNKNOWN_VERB"
	CodeQueryTooLong     Code = "QUERY_TOO_LONG"

	// Table execution
	CodeKeyNotFound   Code = "KEY_NOT_FOUND"
	CodeKeyExists     Code = "KEY_EXISTS"
	CodeValueRequired Code = "VALUE_REQUIRED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Driver I/O
	CodeIOFailure Code = "IO_FAILURE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeQuerySyntax, CodeQueryUnknownVerb, CodeQueryTooLong,
		CodeKeyNotFound, CodeKeyExists, CodeValueRequired,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOFailure:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeQuerySyntax, CodeQueryUnknownVerb, CodeQueryTooLong:
		return "query"
	case CodeKeyNotFound, CodeKeyExists, CodeValueRequired:
		return "table"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIOFailure:
		return "io"
	default:
		return "generic"
	}
}

// IsRecoverable reports whether the session can continue after this error.
// Only driver I/O failures terminate a session.
func (c Code) IsRecoverable() bool {
	return c != CodeIOFailure
}
