// Package types defines the core type system for gocompute.
//
// This package contains type definitions for:
//   - Expression: validated raw expression text
//   - ASTNode: Abstract Syntax Tree nodes
//   - EvaluationResult: one batch outcome record
//   - Error: structured errors with codes
package types

import "strings"

// Expression is a non-empty arithmetic expression string.
//
// The wrapped text is stored verbatim, original whitespace included; only
// the emptiness check operates on the trimmed form. An Expression carries
// no reference to any parse result and is immutable once created.
type Expression struct {
	source string
}

// NewExpression wraps raw in an Expression.
//
// It returns ok=false when raw trimmed of whitespace is empty. Absence is
// not an error here: callers that assemble a batch (for example the CLI
// reading stdin lines) use the false return to skip blank entries, in
// contrast to the top-level Evaluate which reports the same condition as
// an ErrEmptyExpression error.
func NewExpression(raw string) (Expression, bool) {
	if strings.TrimSpace(raw) == "" {
		return Expression{}, false
	}
	return Expression{source: raw}, true
}

// ExpressionFrom wraps raw without validation.
//
// Used where an empty entry must stay in the batch and surface as an
// EmptyExpression error result rather than being skipped (the MCP tool
// shim and EvaluateStrings follow this policy).
func ExpressionFrom(raw string) Expression {
	return Expression{source: raw}
}

// Source returns the original expression text verbatim.
func (e Expression) Source() string {
	return e.source
}

// String returns the original expression text.
func (e Expression) String() string {
	return e.source
}

// EvaluationResult pairs an expression, as typed by the caller, with
// either its numeric value or the error that evaluating it produced.
//
// In a batch, result index i always corresponds to input index i and a
// failed entry never affects any other entry.
type EvaluationResult struct {
	Expression Expression
	Value      float64
	Err        error
}

// Ok reports whether the expression evaluated successfully.
func (r EvaluationResult) Ok() bool {
	return r.Err == nil
}
