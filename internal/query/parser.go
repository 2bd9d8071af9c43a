// File: parser.go
// Title: Query Command Parser
// Description: Converts the whitespace-split tokens of one input line into a
//              structured Command. The verb is matched case-insensitively;
//              key and value tokens are taken verbatim. Pure function of its
//              input, no side effects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial parser implementation

package query

import (
	"strings"

	rbdberror "github.com/msto63/rbdb/internal/core/error"
)

// BuildCommand builds a Command from the tokens of one input line.
//
// At least two tokens are required: the verb and the key. A third token, when
// present, becomes the value; tokens beyond the third are silently ignored.
// Whether a value is required for the verb is the executor's concern.
func BuildCommand(tokens []string) (*Command, error) {
	if len(tokens) < 2 {
		return nil, rbdberror.New("not enough arguments").
			WithCode(rbdberror.CodeQuerySyntax).
			WithOperation("query.BuildCommand").
			WithDetail("tokenCount", len(tokens))
	}

	var kind Kind
	switch strings.ToUpper(tokens[0]) {
	case "INSERT":
		kind = KindInsert
	case "SELECT":
		kind = KindSelect
	case "UPDATE":
		kind = KindUpdate
	case "DELETE":
		kind = KindDelete
	default:
		return nil, rbdberror.New("invalid command type").
			WithCode(rbdberror.CodeQueryUnknownVerb).
			WithOperation("query.BuildCommand").
			WithDetail("verb", tokens[0])
	}

	cmd := &Command{
		Kind: kind,
		Key:  tokens[1],
	}

	if len(tokens) > 2 {
		cmd.Value = tokens[2]
		cmd.HasValue = true
	}

	return cmd, nil
}
