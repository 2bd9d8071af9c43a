// File: doc.go
// Title: Store Package Documentation
// Description: Package documentation for the in-memory key/value table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial documentation

// Package store provides the in-memory key/value table backing a
// session. Keys and values are plain strings, keys are compared
// case-sensitively, and the table holds at most one value per key.
//
// A Table is owned exclusively by the session that created it and is
// not safe for concurrent use.
package store
