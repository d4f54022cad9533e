package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(v float64) *ASTNode {
	n := NewASTNode(NodeNumber, 0)
	n.Value = v
	return n
}

func binary(nt NodeType, lhs, rhs *ASTNode) *ASTNode {
	n := NewASTNode(nt, 0)
	n.LHS = lhs
	n.RHS = rhs
	return n
}

func neg(operand *ASTNode) *ASTNode {
	n := NewASTNode(NodeNeg, 0)
	n.RHS = operand
	return n
}

func TestASTString(t *testing.T) {
	tests := []struct {
		name string
		node *ASTNode
		want string
	}{
		{"integer", num(42), "42"},
		{"decimal", num(3.14), "3.14"},
		{"negation", neg(num(5)), "-5"},
		{"double negation", neg(neg(num(5))), "--5"},
		{"addition", binary(NodeAdd, num(2), num(3)), "(2 + 3)"},
		{"subtraction", binary(NodeSub, num(10), num(4)), "(10 - 4)"},
		{"multiplication", binary(NodeMul, num(3), num(4)), "(3 * 4)"},
		{"division", binary(NodeDiv, num(15), num(3)), "(15 / 3)"},
		{"nested precedence", binary(NodeAdd, num(2), binary(NodeMul, num(3), num(4))), "(2 + (3 * 4))"},
		{"grouped left", binary(NodeMul, binary(NodeAdd, num(2), num(3)), num(4)), "((2 + 3) * 4)"},
		{"negated group", neg(binary(NodeAdd, num(2), num(3))), "-(2 + 3)"},
		{"large literal stays decimal", num(1e21), "1000000000000000000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "number", NodeNumber.String())
	assert.Equal(t, "+", NodeAdd.String())
	assert.Equal(t, "-", NodeSub.String())
	assert.Equal(t, "*", NodeMul.String())
	assert.Equal(t, "/", NodeDiv.String())
}
