// Package error provides structured error handling for RBDB.
//
// Package: error
// Title: RBDB Error Handling
// Description: This package implements a structured error system with error
//              codes and severity levels. Query and table diagnostics carry
//              an enumerated code so callers can branch on the failure
//              category instead of matching message strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation with codes and severity
//
// Usage:
//	import rbdberror "github.com/msto63/rbdb/internal/core/error"
//
//	err := rbdberror.New("not enough arguments").
//		WithCode(rbdberror.CodeQuerySyntax).
//		WithOperation("query.BuildCommand")
//
//	if rbdberror.HasCode(err, rbdberror.CodeQuerySyntax) {
//		// recoverable parse failure, session continues
//	}
package error
