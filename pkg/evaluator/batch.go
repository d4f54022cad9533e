package evaluator

import (
	"sync"

	"github.com/sandrolain/gocompute/pkg/parser"
	"github.com/sandrolain/gocompute/pkg/types"
)

// EvalBatch applies parse+evaluate to an ordered collection of
// expressions and returns one outcome record per input.
//
// The output has the same length and order as the input: result index i
// always corresponds to expression index i. Each entry is evaluated in
// full isolation — a failure never aborts or affects the remaining
// entries — and an empty input collection yields an empty output.
//
// When the Concurrency option is enabled and the batch is large enough,
// entries are fanned out over a bounded set of goroutines; results are
// still written by index, so ordering is unaffected.
func (e *Evaluator) EvalBatch(exprs []types.Expression) []types.EvaluationResult {
	results := make([]types.EvaluationResult, len(exprs))

	if e.opts.Concurrency && len(exprs) > 1 {
		e.evalBatchConcurrent(exprs, results)
		return results
	}

	for i, expr := range exprs {
		results[i] = e.evalOne(expr)
	}
	return results
}

// EvalStrings is EvalBatch over raw strings, normalized internally.
//
// Entries are wrapped verbatim with ExpressionFrom: an empty or
// whitespace-only string stays in the batch and produces an
// ErrEmptyExpression result in its slot instead of being skipped.
func (e *Evaluator) EvalStrings(inputs []string) []types.EvaluationResult {
	exprs := make([]types.Expression, len(inputs))
	for i, input := range inputs {
		exprs[i] = types.ExpressionFrom(input)
	}
	return e.EvalBatch(exprs)
}

// evalOne runs the full pipeline for a single expression.
func (e *Evaluator) evalOne(expr types.Expression) types.EvaluationResult {
	result := types.EvaluationResult{Expression: expr}

	node, err := parser.Parse(expr.Source())
	if err != nil {
		result.Err = err
		return result
	}

	result.Value, result.Err = e.Eval(node)
	return result
}

// evalBatchConcurrent fans the batch out over a bounded worker set.
// Workers pull indices from a shared channel and write to their own slot
// of the results slice, so no locking of individual results is needed.
func (e *Evaluator) evalBatchConcurrent(exprs []types.Expression, results []types.EvaluationResult) {
	workers := e.opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(exprs) {
		workers = len(exprs)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = e.evalOne(exprs[i])
			}
		}()
	}

	for i := range exprs {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
