package types

import "strconv"

// NodeType identifies the type of an AST node.
type NodeType uint8

// The complete set of node types produced by the parser. No other node
// type ever appears in a well-formed tree.
const (
	NodeNumber NodeType = iota // numeric literal
	NodeAdd                    // left + right
	NodeSub                    // left - right
	NodeMul                    // left * right
	NodeDiv                    // left / right
	NodeNeg                    // arithmetic negation of a single operand
)

// String returns the operator symbol for binary and unary nodes, or
// "number" for literals.
func (nt NodeType) String() string {
	switch nt {
	case NodeNumber:
		return "number"
	case NodeAdd:
		return "+"
	case NodeSub:
		return "-"
	case NodeMul:
		return "*"
	case NodeDiv:
		return "/"
	case NodeNeg:
		return "-"
	default:
		return "(unknown)"
	}
}

// ASTNode represents a node in the Abstract Syntax Tree of an arithmetic
// expression.
//
// A tree is strictly hierarchical: every child is owned by exactly one
// parent, there is no sharing and no cycles, and a tree lives only for the
// duration of one parse+evaluate call. Nodes are constructed by the parser
// and never mutated afterwards.
type ASTNode struct {
	Type     NodeType
	Value    float64 // Literal value; set only for NodeNumber
	Position int     // Starting position of the node in the input string

	LHS *ASTNode // Left operand of a binary node
	RHS *ASTNode // Right operand of a binary node, or the NodeNeg operand
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// String returns the canonical textual form of the subtree rooted at n.
//
// Numbers are printed in plain decimal (never exponent notation, so the
// output always re-parses under the grammar), every binary operation is
// fully parenthesized, and negation is printed as a prefix minus:
//
//	2 + 3 * 4  →  (2 + (3 * 4))
//	--5        →  --5
//
// Parsing the canonical form yields a tree that evaluates to the same
// value as the original.
func (n *ASTNode) String() string {
	switch n.Type {
	case NodeNumber:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	case NodeNeg:
		return "-" + n.RHS.String()
	case NodeAdd, NodeSub, NodeMul, NodeDiv:
		return "(" + n.LHS.String() + " " + n.Type.String() + " " + n.RHS.String() + ")"
	default:
		return "(invalid)"
	}
}
