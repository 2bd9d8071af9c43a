// File: command.go
// Title: Query Command Types
// Description: Defines the command kinds and the structured Command value
//              produced by the parser and consumed by the executor. A Command
//              lives for exactly one input line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package query

import "fmt"

// Kind identifies the verb of a command
type Kind int

const (
	// KindInsert stores a new key/value pair
	KindInsert Kind = iota

	// KindSelect reads the value stored under a key
	KindSelect

	// KindUpdate replaces the value of an existing key
	KindUpdate

	// KindDelete removes a key and its value
	KindDelete
)

// String returns the uppercase verb for the kind
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindSelect:
		return "SELECT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// RequiresValue reports whether the kind semantically needs a value token.
// The parser does not enforce this; the executor re-checks it per command.
func (k Kind) RequiresValue() bool {
	return k == KindInsert || k == KindUpdate
}

// Command is the structured form of one parsed input line.
// Key is always non-empty; Value is only meaningful when HasValue is set.
type Command struct {
	Kind     Kind
	Key      string
	Value    string
	HasValue bool
}

// String returns a compact representation for logging
func (c *Command) String() string {
	if c.HasValue {
		return fmt.Sprintf("%s %s %s", c.Kind, c.Key, c.Value)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Key)
}
