package parser

import (
	"fmt"
	"strconv"

	"github.com/sandrolain/gocompute/pkg/types"
)

// Parser implements a recursive descent parser for arithmetic expressions.
// It uses Pratt's "Top Down Operator Precedence" algorithm to handle
// operator precedence and left associativity.
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a new parser for the given input string.
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}

	// Read the first token
	p.advance()

	return p
}

// Parse parses the entire expression and returns the root AST node.
// The whole input must be consumed: trailing tokens after a complete
// expression (for example "1 2" or "1 + 2)") are a syntax error.
func (p *Parser) Parse() (*types.ASTNode, error) {
	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}

	if p.current.Type == TokenEOF {
		return nil, p.error(types.ErrEmptyExpression, "empty expression")
	}

	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}
	if p.current.Type != TokenEOF {
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("unexpected token %q", p.current.Value))
	}

	return node, nil
}

// Operator precedence table (binding power).
// Higher values bind more tightly.
var precedence = map[TokenType]int{
	TokenPlus:  50, // +
	TokenMinus: 50, // -
	TokenMult:  60, // *
	TokenDiv:   60, // /
}

// unaryPrecedence is the binding power of prefix minus. It is higher than
// every binary operator, so "-2 * 3" parses as "(-2) * 3".
const unaryPrecedence = 70

// getPrecedence returns the precedence of a token type.
func (p *Parser) getPrecedence(tt TokenType) int {
	if prec, ok := precedence[tt]; ok {
		return prec
	}
	return 0
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// expect checks that the current token matches the expected type and advances.
func (p *Parser) expect(tt TokenType) error {
	if p.current.Type == TokenError {
		return p.lexer.Error()
	}
	if p.current.Type != tt {
		return p.error(types.ErrSyntaxError, fmt.Sprintf("expected %s but got %s", tt.String(), p.current.Type.String()))
	}
	p.advance()
	return nil
}

// error creates a parser error at the current token.
func (p *Parser) error(code types.ErrorCode, message string) error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: p.current.Position,
		Token:    p.current.Value,
	}
}

// parseExpression parses an expression with operator precedence.
// rbp is the right binding power (minimum precedence). Because the loop
// only continues while the next operator binds strictly tighter than rbp,
// a run of equal-precedence operators folds left: "10 - 5 - 2" becomes
// "(10 - 5) - 2".
func (p *Parser) parseExpression(rbp int) (*types.ASTNode, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for rbp < p.getPrecedence(p.current.Type) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses a prefix expression (nud - null denotation).
// These are expressions that don't require a left-hand side: number
// literals, unary minus and parenthesized groups.
func (p *Parser) parsePrefix() (*types.ASTNode, error) {
	token := p.current

	switch token.Type {
	case TokenNumber:
		return p.parseNumber()
	case TokenMinus:
		return p.parseUnaryMinus()
	case TokenParenOpen:
		return p.parseGrouping()
	case TokenError:
		return nil, p.lexer.Error()
	case TokenEOF:
		return nil, p.error(types.ErrSyntaxError, "unexpected end of expression, operand expected")
	default:
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("unexpected token %q, operand expected", token.Value))
	}
}

// parseInfix parses a binary operator expression (led - left denotation).
// The right operand is parsed at the operator's own binding power, which
// yields left associativity for the equal-precedence case.
func (p *Parser) parseInfix(left *types.ASTNode) (*types.ASTNode, error) {
	token := p.current

	var nt types.NodeType
	switch token.Type {
	case TokenPlus:
		nt = types.NodeAdd
	case TokenMinus:
		nt = types.NodeSub
	case TokenMult:
		nt = types.NodeMul
	case TokenDiv:
		nt = types.NodeDiv
	default:
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("unexpected infix token %q", token.Value))
	}

	p.advance()

	right, err := p.parseExpression(p.getPrecedence(token.Type))
	if err != nil {
		return nil, err
	}

	node := types.NewASTNode(nt, token.Position)
	node.LHS = left
	node.RHS = right
	return node, nil
}

// parseNumber parses a number literal.
func (p *Parser) parseNumber() (*types.ASTNode, error) {
	token := p.current

	v, err := strconv.ParseFloat(token.Value, 64)
	if err != nil {
		// The lexer guarantees the literal's shape, so conversion can only
		// fail for values outside the representable float64 range.
		perr := types.NewError(types.ErrInvalidNumber, fmt.Sprintf("invalid number %q", token.Value), token.Position)
		return nil, perr.WithToken(token.Value).WithCause(err)
	}

	node := types.NewASTNode(types.NodeNumber, token.Position)
	node.Value = v
	p.advance()
	return node, nil
}

// parseUnaryMinus parses a negation. The operand is parsed at
// unaryPrecedence, and a further leading minus recurses here, so any
// number of stacked minus signs composes: "--5" is Neg(Neg(5)).
func (p *Parser) parseUnaryMinus() (*types.ASTNode, error) {
	token := p.current
	p.advance()

	operand, err := p.parseExpression(unaryPrecedence)
	if err != nil {
		return nil, err
	}

	node := types.NewASTNode(types.NodeNeg, token.Position)
	node.RHS = operand
	return node, nil
}

// parseGrouping parses a parenthesized sub-expression. Inside the
// parentheses precedence resets to the loosest level, and the closing
// parenthesis is mandatory.
func (p *Parser) parseGrouping() (*types.ASTNode, error) {
	p.advance() // consume '('

	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenParenClose); err != nil {
		return nil, err
	}

	return node, nil
}
