// Package parser implements the arithmetic expression parser.
//
// The parser uses a hand-written recursive descent approach with Pratt's
// "Top Down Operator Precedence" algorithm to resolve precedence and
// associativity, and provides detailed error reporting with source
// positions.
//
// # Architecture
//
// The parser consists of two main components:
//   - Lexer: Tokenizes the input expression into a stream of tokens
//   - Parser: Builds an Abstract Syntax Tree (AST) from tokens
//
// # Grammar
//
//	expression     := additive
//	additive       := multiplicative ( ('+'|'-') multiplicative )*
//	multiplicative := unary ( ('*'|'/') unary )*
//	unary          := '-' unary | primary
//	primary        := number | '(' additive ')'
//	number         := digit+ ('.' digit+)?
//
// Both binary operator layers are left-associative: "a - b - c" parses to
// "(a - b) - c". Scientific notation and leading-decimal numbers are not
// part of the grammar; "1e10", ".5" and "5." are all syntax errors.
//
// # Example
//
//	node, err := parser.Parse("2 + 3 * 4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(node.String()) // (2 + (3 * 4))
package parser

import (
	"github.com/sandrolain/gocompute/pkg/types"
)

// Parse parses an arithmetic expression and returns the root AST node.
//
// The function tokenizes the input and builds an AST covering the entire
// input with no leftover tokens. If parsing fails, it returns a
// *types.Error with position information; an input that is empty after
// trimming whitespace yields ErrEmptyExpression.
func Parse(input string) (*types.ASTNode, error) {
	p := NewParser(input)
	return p.Parse()
}
