// Package evaluator implements the AST evaluation engine.
//
// The evaluator receives a parsed Abstract Syntax Tree (AST) from the
// parser and reduces it to a float64 by pure structural recursion. It
// holds no state across calls: evaluating the same tree twice yields
// bit-identical results.
//
// # Example
//
//	eval := evaluator.New()
//	value, err := eval.Eval(node)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Numeric policy
//
// The only arithmetic condition reported as an error is division by a
// divisor that evaluated to exactly zero (positive or negative zero, no
// epsilon). Overflow to IEEE infinity propagates silently.
package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/sandrolain/gocompute/pkg/types"
)

// Evaluator evaluates arithmetic expression trees.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Concurrency enables concurrent batch evaluation. Single-expression
	// evaluation is always synchronous; batch results are written by index
	// so output order is identical in both modes.
	Concurrency bool
	// Workers caps the number of goroutines used for concurrent batch
	// evaluation. Defaults to 4.
	Workers int
	// Debug enables debug logging of each evaluation.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
}

// EvalOption configures an Evaluator.
type EvalOption func(*EvalOptions)

// WithConcurrency enables concurrent batch evaluation.
func WithConcurrency(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Concurrency = enable
	}
}

// WithWorkers sets the number of workers for concurrent batch evaluation.
func WithWorkers(n int) EvalOption {
	return func(opts *EvalOptions) {
		opts.Workers = n
	}
}

// WithDebug enables debug logging.
func WithDebug(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enable
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// New creates a new Evaluator with the given options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		Concurrency: false,
		Workers:     4,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Evaluator{
		opts:   options,
		logger: options.Logger,
	}
}

// Eval reduces the tree rooted at node to a float64.
//
// Number returns its value; Add, Sub, Mul and Div combine their
// recursively evaluated children; Neg negates its child. Div checks the
// evaluated divisor against exact zero before computing the quotient and
// returns ErrDivisionByZero when it is. A node type outside the closed
// set yields ErrInvalidNode, which indicates a parser defect rather than
// an input defect.
func (e *Evaluator) Eval(node *types.ASTNode) (float64, error) {
	if node == nil {
		return 0, types.NewError(types.ErrInvalidNode, "nil node", -1)
	}

	v, err := e.eval(node)
	if e.opts.Debug {
		e.logger.Debug("evaluated node", "type", node.Type.String(), "value", v, "err", err)
	}
	return v, err
}

func (e *Evaluator) eval(node *types.ASTNode) (float64, error) {
	switch node.Type {
	case types.NodeNumber:
		return node.Value, nil

	case types.NodeAdd:
		lhs, rhs, err := e.evalChildren(node)
		if err != nil {
			return 0, err
		}
		return lhs + rhs, nil

	case types.NodeSub:
		lhs, rhs, err := e.evalChildren(node)
		if err != nil {
			return 0, err
		}
		return lhs - rhs, nil

	case types.NodeMul:
		lhs, rhs, err := e.evalChildren(node)
		if err != nil {
			return 0, err
		}
		return lhs * rhs, nil

	case types.NodeDiv:
		lhs, rhs, err := e.evalChildren(node)
		if err != nil {
			return 0, err
		}
		if rhs == 0 {
			return 0, types.NewError(types.ErrDivisionByZero, "division by zero", node.Position)
		}
		return lhs / rhs, nil

	case types.NodeNeg:
		v, err := e.eval(node.RHS)
		if err != nil {
			return 0, err
		}
		return -v, nil

	default:
		return 0, types.NewError(types.ErrInvalidNode, fmt.Sprintf("unexpected node type %d", node.Type), node.Position)
	}
}

// evalChildren evaluates both operands of a binary node, failing fast on
// the first error.
func (e *Evaluator) evalChildren(node *types.ASTNode) (float64, float64, error) {
	lhs, err := e.eval(node.LHS)
	if err != nil {
		return 0, 0, err
	}
	rhs, err := e.eval(node.RHS)
	if err != nil {
		return 0, 0, err
	}
	return lhs, rhs, nil
}
