// File: executor.go
// Title: Table Command Execution Engine
// Description: Applies structured commands to the in-memory table. Every
//              inapplicable command is a recoverable warning, never a hard
//              error — the session always continues. The table is mutated
//              only on the documented success path of each kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial executor implementation

package executor

import (
	"fmt"

	rbdberror "github.com/msto63/rbdb/internal/core/error"
	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/query"
	"github.com/msto63/rbdb/internal/store"
)

// Warning is a non-fatal diagnostic emitted when a command cannot be fully
// satisfied. The code lets callers branch on the condition; the message is
// the user-visible text.
type Warning struct {
	Code    rbdberror.Code
	Message string
}

// Result represents the outcome of executing one command. Output is empty
// when no effectful branch fired; Warnings hold any diagnostics.
type Result struct {
	Output   string
	Warnings []Warning
}

// HasWarnings reports whether any diagnostics were emitted
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// warn appends a diagnostic to the result
func (r *Result) warn(code rbdberror.Code, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

// Executor applies commands to a table
type Executor struct {
	logger *rbdblog.Logger
}

// Options configures executor behavior
type Options struct {
	Logger *rbdblog.Logger
}

// New creates a new executor
func New(opts Options) *Executor {
	if opts.Logger == nil {
		opts.Logger = rbdblog.GetDefault()
	}

	return &Executor{
		logger: opts.Logger.WithField("component", "executor"),
	}
}

// Execute applies cmd to table. An error is returned only for a nil command
// or table (caller bug); every condition arising from user input is reported
// as a Warning on the Result.
func (e *Executor) Execute(cmd *query.Command, table *store.Table) (*Result, error) {
	if cmd == nil {
		return nil, rbdberror.New("command cannot be nil").
			WithCode(rbdberror.CodeInternal).
			WithOperation("executor.Execute")
	}
	if table == nil {
		return nil, rbdberror.New("table cannot be nil").
			WithCode(rbdberror.CodeInternal).
			WithOperation("executor.Execute")
	}

	result := &Result{}

	switch cmd.Kind {
	case query.KindInsert:
		e.executeInsert(cmd, table, result)
	case query.KindSelect:
		e.executeSelect(cmd, table, result)
	case query.KindUpdate:
		e.executeUpdate(cmd, table, result)
	case query.KindDelete:
		e.executeDelete(cmd, table, result)
	default:
		return nil, rbdberror.Newf("unknown command kind: %d", int(cmd.Kind)).
			WithCode(rbdberror.CodeInternal).
			WithOperation("executor.Execute")
	}

	for _, w := range result.Warnings {
		e.logger.Warn(w.Message, rbdblog.Fields{
			"code": w.Code.String(),
			"verb": cmd.Kind.String(),
			"key":  cmd.Key,
		})
	}

	return result, nil
}

// executeInsert stores the value under the key. A pre-existing key warns
// but the overwrite still happens.
func (e *Executor) executeInsert(cmd *query.Command, table *store.Table, result *Result) {
	if table.Has(cmd.Key) {
		result.warn(rbdberror.CodeKeyExists,
			fmt.Sprintf("Key %s already exists. Use UPDATE query instead", cmd.Key))
	}

	if !cmd.HasValue {
		result.warn(rbdberror.CodeValueRequired,
			"INSERT requires a value, but none was provided")
		return
	}

	table.Set(cmd.Key, cmd.Value)
	result.Output = fmt.Sprintf("SUCCESS: Inserted %s:%s into database", cmd.Key, cmd.Value)
}

// executeSelect reads the value stored under the key
func (e *Executor) executeSelect(cmd *query.Command, table *store.Table, result *Result) {
	value, ok := table.Get(cmd.Key)
	if !ok {
		result.warn(rbdberror.CodeKeyNotFound,
			fmt.Sprintf("No entry found for key = %s", cmd.Key))
		return
	}

	result.Output = value
}

// executeUpdate replaces the value of an existing key
func (e *Executor) executeUpdate(cmd *query.Command, table *store.Table, result *Result) {
	if !table.Has(cmd.Key) {
		result.warn(rbdberror.CodeKeyNotFound,
			fmt.Sprintf("No entry found for key = %s", cmd.Key))
		return
	}

	if !cmd.HasValue {
		result.warn(rbdberror.CodeValueRequired,
			"UPDATE requires a value, but none was provided")
		return
	}

	table.Set(cmd.Key, cmd.Value)
	result.Output = fmt.Sprintf("SUCCESS: Updated %s with %s", cmd.Key, cmd.Value)
}

// executeDelete removes the key from the table
func (e *Executor) executeDelete(cmd *query.Command, table *store.Table, result *Result) {
	if !table.Delete(cmd.Key) {
		result.warn(rbdberror.CodeKeyNotFound,
			fmt.Sprintf("No entry found for key = %s", cmd.Key))
		return
	}

	result.Output = fmt.Sprintf("SUCCESS: Deleted %s", cmd.Key)
}
