// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that diagnostics can be
//              logged and prioritized appropriately. Table warnings are low
//              severity; only driver I/O failures rate high.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor condition that does not affect the session
	// Examples: unknown key, missing value, malformed input line
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that degrades functionality
	// Examples: unusable configuration file, invalid configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that ends the session
	// Examples: stdin/stdout stream failures
	SeverityHigh

	// SeverityCritical indicates the process cannot continue at all
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// IsFatal returns true if this severity ends the interactive session
func (s Severity) IsFatal() bool {
	return s >= SeverityHigh
}

// SeverityFromCode determines the appropriate severity level for an error code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeIOFailure:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInternal:
		return SeverityMedium

	case CodeQuerySyntax, CodeQueryUnknownVerb, CodeQueryTooLong,
		CodeKeyNotFound, CodeKeyExists, CodeValueRequired,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
