// Package log provides structured logging for RBDB.
//
// Package: log
// Title: RBDB Structured Logging
// Description: This package implements a structured logger with levels,
//              contextual fields, and pluggable output formats (JSON, text,
//              colored console). Loggers are immutable; the With* methods
//              return clones. Output defaults to stderr so interactive
//              drivers keep stdout for command results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation
//
// Usage:
//	logger := log.GetDefault().WithField("component", "executor")
//	logger.Warn("no entry found", log.Fields{"key": key})
package log
