package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocompute/pkg/types"
)

// lexAll drains the lexer, returning every token up to and including the
// first EOF or error token.
func lexAll(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		t := l.Next()
		tokens = append(tokens, t)
		if t.Type == TokenEOF || t.Type == TokenError {
			return tokens
		}
	}
}

func TestLexTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []TokenType
	}{
		{"single number", "42", []TokenType{TokenNumber, TokenEOF}},
		{"decimal number", "3.14", []TokenType{TokenNumber, TokenEOF}},
		{"addition", "2+3", []TokenType{TokenNumber, TokenPlus, TokenNumber, TokenEOF}},
		{"spaced", "  2  +  3  ", []TokenType{TokenNumber, TokenPlus, TokenNumber, TokenEOF}},
		{"all whitespace kinds", "1\t+\n2\r+ 3", []TokenType{TokenNumber, TokenPlus, TokenNumber, TokenPlus, TokenNumber, TokenEOF}},
		{"parens", "(1)", []TokenType{TokenParenOpen, TokenNumber, TokenParenClose, TokenEOF}},
		{"all operators", "1+2-3*4/5", []TokenType{
			TokenNumber, TokenPlus, TokenNumber, TokenMinus, TokenNumber,
			TokenMult, TokenNumber, TokenDiv, TokenNumber, TokenEOF,
		}},
		{"double minus", "--5", []TokenType{TokenMinus, TokenMinus, TokenNumber, TokenEOF}},
		{"empty", "", []TokenType{TokenEOF}},
		{"only whitespace", " \t\n ", []TokenType{TokenEOF}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens := lexAll(tc.input)
			require.Len(t, tokens, len(tc.types))
			for i, tt := range tc.types {
				assert.Equal(t, tt, tokens[i].Type, "token %d of %q", i, tc.input)
			}
		})
	}
}

func TestLexTokenValues(t *testing.T) {
	tokens := lexAll(" 12.5 + 7 ")
	require.Len(t, tokens, 4)
	assert.Equal(t, "12.5", tokens[0].Value)
	assert.Equal(t, 1, tokens[0].Position)
	assert.Equal(t, "+", tokens[1].Value)
	assert.Equal(t, 6, tokens[1].Position)
	assert.Equal(t, "7", tokens[2].Value)
	assert.Equal(t, 8, tokens[2].Position)
}

func TestLexMalformedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing dot", "5."},
		{"leading dot", ".5"},
		{"bare dot", "."},
		{"dot between operators", "1 + ."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLexer(tc.input)
			var last Token
			for {
				last = l.Next()
				if last.Type == TokenEOF || last.Type == TokenError {
					break
				}
			}
			require.Equal(t, TokenError, last.Type, "input %q", tc.input)
			require.Error(t, l.Error())
			assert.True(t, types.IsCode(l.Error(), types.ErrSyntaxError))
		})
	}
}

func TestLexDoubleDecimalPoint(t *testing.T) {
	// "1.2.3" lexes as the number 1.2 followed by an error on the second dot.
	tokens := lexAll("1.2.3")
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, "1.2", tokens[0].Value)
	assert.Equal(t, TokenError, tokens[1].Type)
}

func TestLexUnrecognizedCharacters(t *testing.T) {
	for _, input := range []string{"2 ^ 3", "1a2", "a", "2 % 3", "1 & 2", "€"} {
		l := NewLexer(input)
		var last Token
		for {
			last = l.Next()
			if last.Type == TokenEOF || last.Type == TokenError {
				break
			}
		}
		require.Equal(t, TokenError, last.Type, "input %q", input)
		assert.True(t, types.IsCode(l.Error(), types.ErrSyntaxError), "input %q", input)
	}
}

func TestLexErrorSticks(t *testing.T) {
	l := NewLexer("@ 1 + 2")
	first := l.Next()
	require.Equal(t, TokenError, first.Type)

	// After an error the lexer keeps reporting EOF, never later tokens.
	next := l.Next()
	assert.Equal(t, TokenEOF, next.Type)
	require.Error(t, l.Error())
}
