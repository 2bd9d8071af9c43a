// File: doc.go
// Title: Session Package Documentation
// Description: Package documentation for the interactive session facade.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial documentation

// Package session ties the command parser, the executor, and a privately
// owned table together behind a line-oriented facade. Drivers (the plain
// shell and the TUI) read input, check IsSentinel, and hand everything
// else to ProcessLine.
//
// Each Session carries a uuid identifier and tags every processed line
// with a fresh request id for log correlation.
package session
