// File: table.go
// Title: In-Memory Key-Value Table
// Description: Implements the Table, the single in-memory key→value mapping
//              that is the entire persistent state of an RBDB session. The
//              Table lives for the whole session and is discarded at exit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package store

// Table maps string keys to string values. Keys are unique; insertion order
// is irrelevant. A Table is exclusively owned by one session and is not safe
// for concurrent use.
type Table struct {
	entries map[string]string
}

// New creates an empty table
func New() *Table {
	return &Table{
		entries: make(map[string]string),
	}
}

// Set stores value under key, overwriting any previous value
func (t *Table) Set(key, value string) {
	t.entries[key] = value
}

// Get returns the value stored under key and whether the key exists
func (t *Table) Get(key string) (string, bool) {
	value, ok := t.entries[key]
	return value, ok
}

// Has reports whether key is present in the table
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Delete removes key from the table and reports whether it was present
func (t *Table) Delete(key string) bool {
	_, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}
	return ok
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	return len(t.entries)
}
