// File: doc.go
// Title: Executor Package Documentation
// Description: Package documentation for the table executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial documentation

// Package executor applies parsed commands to a table and reports the
// outcome as a Result.
//
// Execution never hard-errors for user input: conditions such as a
// missing key or a missing value surface as Warnings on the Result so
// the session keeps running. Errors from Execute indicate programming
// faults (nil command, nil table), not user mistakes.
//
// Success outputs follow a fixed text contract per verb, e.g.
//
//	SUCCESS: Inserted foo:bar into database
//
// and SELECT returns the stored value verbatim.
package executor
