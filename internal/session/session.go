// File: session.go
// Title: Interactive Session
// Description: Session facade that turns raw input lines into executed
//              commands against a privately owned table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package session

import (
	"strings"

	"github.com/google/uuid"

	rbdberror "github.com/msto63/rbdb/internal/core/error"
	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/executor"
	"github.com/msto63/rbdb/internal/query"
	"github.com/msto63/rbdb/internal/store"
	rbdbstringx "github.com/msto63/rbdb/internal/utils/stringx"
)

// DefaultMaxLineLength bounds a single input line in bytes. Lines beyond
// this are rejected before tokenization.
const DefaultMaxLineLength = 4096

// Session owns one table for its whole lifetime and processes input
// lines against it. A Session is not safe for concurrent use.
type Session struct {
	id            string
	table         *store.Table
	executor      *executor.Executor
	logger        *rbdblog.Logger
	maxLineLength int
}

// Options configures a new Session.
type Options struct {
	// Logger receives per-line diagnostics. Defaults to the package
	// default logger.
	Logger *rbdblog.Logger

	// MaxLineLength overrides DefaultMaxLineLength when positive.
	MaxLineLength int
}

// New creates a Session with a fresh, empty table.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = rbdblog.GetDefault()
	}

	id := uuid.NewString()

	maxLineLength := opts.MaxLineLength
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}

	return &Session{
		id:    id,
		table: store.New(),
		executor: executor.New(executor.Options{
			Logger: logger,
		}),
		logger:        logger.WithField("session_id", id),
		maxLineLength: maxLineLength,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Table exposes the session's table, mainly for tests and drivers that
// want to inspect state.
func (s *Session) Table() *store.Table {
	return s.table
}

// ProcessLine parses a raw input line and executes it against the
// session table. Parse failures and over-length lines return a typed
// error and leave the table untouched; everything the executor reports
// comes back as Warnings on the Result.
func (s *Session) ProcessLine(line string) (*executor.Result, error) {
	requestID := uuid.NewString()
	logger := s.logger.WithField("request_id", requestID)

	if len(line) > s.maxLineLength {
		err := rbdberror.Newf("input line exceeds %d bytes", s.maxLineLength).
			WithCode(rbdberror.CodeQueryTooLong).
			WithOperation("ProcessLine").
			WithDetail("line_length", len(line)).
			WithDetail("line_preview", rbdbstringx.Truncate(line, 32, "..."))
		logger.LogError(err)
		return nil, err
	}

	tokens := strings.Fields(line)
	cmd, err := query.BuildCommand(tokens)
	if err != nil {
		logger.LogError(err)
		return nil, err
	}

	logger.Debug("executing command", rbdblog.Fields{
		"verb": cmd.Kind.String(),
		"key":  cmd.Key,
	})

	return s.executor.Execute(cmd, s.table)
}

// IsSentinel reports whether the trimmed line asks to end the session.
// The comparison is case-sensitive: "quit" and "exit" terminate, "QUIT"
// does not.
func IsSentinel(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "quit" || trimmed == "exit"
}
