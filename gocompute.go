// Package gocompute evaluates arithmetic expressions supplied as text.
//
// The pipeline is: raw string → parser (grammar-driven) → AST →
// evaluator → float64 or a structured error. The supported grammar is
// the four binary operators + - * / with the usual precedence, unary
// minus, parentheses and decimal number literals; see the parser package
// for the full production rules.
//
// # Quick Start
//
//	// Single expression
//	value, err := gocompute.Evaluate("2 + 3 * 4")
//
//	// Batch evaluation: order-preserving, failure-isolated
//	results := gocompute.EvaluateStrings([]string{"2+3", "5/0", "3*4"})
//
//	// Inspect the tree
//	node, err := gocompute.Parse("(2 + 3) * 4")
//	fmt.Println(node.String()) // ((2 + 3) * 4)
//
// # Errors
//
// Failures are values of *types.Error carrying one of five codes:
// ErrEmptyExpression, ErrSyntaxError, ErrInvalidNumber,
// ErrDivisionByZero and ErrInvalidNode. Nothing in this package panics
// on bad input or terminates the process.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/gocompute/pkg/parser
//   - Evaluator: github.com/sandrolain/gocompute/pkg/evaluator
//   - Types: github.com/sandrolain/gocompute/pkg/types
package gocompute

import (
	"fmt"
	"strings"

	"github.com/sandrolain/gocompute/pkg/evaluator"
	"github.com/sandrolain/gocompute/pkg/parser"
	"github.com/sandrolain/gocompute/pkg/types"
)

// Version returns the current version of gocompute.
func Version() string {
	return "v0.1.0-dev"
}

// Evaluate parses and evaluates a single expression string end to end.
//
// An input that is empty after trimming whitespace yields an
// ErrEmptyExpression error (contrast with types.NewExpression, which
// treats the same condition as an absent optional for batch callers).
func Evaluate(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, types.NewError(types.ErrEmptyExpression, "empty expression", 0)
	}

	node, err := parser.Parse(input)
	if err != nil {
		return 0, err
	}

	return evaluator.New().Eval(node)
}

// EvaluateBatch applies parse+evaluate to an ordered collection of
// expressions, preserving order and isolating failures. See
// evaluator.Evaluator.EvalBatch.
func EvaluateBatch(exprs []types.Expression, opts ...evaluator.EvalOption) []types.EvaluationResult {
	return evaluator.New(opts...).EvalBatch(exprs)
}

// EvaluateStrings is EvaluateBatch over raw strings, wrapped verbatim.
// Empty entries produce ErrEmptyExpression results in their slots.
func EvaluateStrings(inputs []string, opts ...evaluator.EvalOption) []types.EvaluationResult {
	return evaluator.New(opts...).EvalStrings(inputs)
}

// Parse parses an expression and returns the root AST node.
func Parse(input string) (*types.ASTNode, error) {
	return parser.Parse(input)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(input string) *types.ASTNode {
	node, err := parser.Parse(input)
	if err != nil {
		panic(fmt.Sprintf("gocompute: Parse(%q): %v", input, err))
	}
	return node
}
