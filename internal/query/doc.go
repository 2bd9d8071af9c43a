// Package query implements the RBDB command parser.
//
// Package: query
// Title: RBDB Query Parsing
// Description: Converts tokenized input lines into structured Command values.
//              Four verbs exist: INSERT, SELECT, UPDATE, DELETE. The verb is
//              matched case-insensitively; key and value are verbatim. Parse
//              failures carry QUERY_* error codes so drivers can report them
//              without ending the session.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation
package query
