package gocompute_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocompute"
	"github.com/sandrolain/gocompute/pkg/types"
)

func TestEvaluateLiterals(t *testing.T) {
	for _, v := range []float64{0, 1, 42, 3.14, 0.5, 123.456, 1000000} {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		got, err := gocompute.Evaluate(s)
		require.NoError(t, err, "literal %q", s)
		assert.InDelta(t, v, got, 1e-9, "literal %q", s)
	}
}

func TestEvaluateLeftAssociativity(t *testing.T) {
	v, err := gocompute.Evaluate("10 - 5 - 2")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = gocompute.Evaluate("20 / 4 / 2")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "20 / 4 / 2 must be (20 / 4) / 2, not 20 / (4 / 2)")
}

func TestEvaluatePrecedence(t *testing.T) {
	v, err := gocompute.Evaluate("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, 14.0, v)

	v, err = gocompute.Evaluate("2 * 3 + 4")
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = gocompute.Evaluate("(2 + 3) * 4")
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)
}

func TestEvaluateUnaryStacking(t *testing.T) {
	v, err := gocompute.Evaluate("--5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = gocompute.Evaluate("---5")
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, input := range []string{"5 / 0", "(5 - 5) / (3 - 3)"} {
		_, err := gocompute.Evaluate(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, types.IsCode(err, types.ErrDivisionByZero), "input %q: %v", input, err)
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := gocompute.Evaluate(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, types.IsCode(err, types.ErrEmptyExpression), "input %q: %v", input, err)
	}
}

func TestEvaluateMalformedInput(t *testing.T) {
	for _, input := range []string{".5", "5.", "1.2.3", "(1 + 2", "1 + 2)", "1 2", "2 ^ 3", "abc"} {
		_, err := gocompute.Evaluate(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, types.IsCode(err, types.ErrSyntaxError), "input %q: %v", input, err)
	}
}

func TestEvaluateBatchOrderAndIsolation(t *testing.T) {
	results := gocompute.EvaluateStrings([]string{"2+3", "5/0", "3*4"})
	require.Len(t, results, 3)

	assert.Equal(t, 5.0, results[0].Value)
	assert.True(t, types.IsCode(results[1].Err, types.ErrDivisionByZero))
	assert.Equal(t, 12.0, results[2].Value)
}

func TestEvaluateIdempotent(t *testing.T) {
	inputs := []string{"1.1 + 2.2", "10 / 3", "5 / 0", "", "1 +"}

	for _, input := range inputs {
		v1, err1 := gocompute.Evaluate(input)
		v2, err2 := gocompute.Evaluate(input)

		if err1 != nil {
			require.Error(t, err2, "input %q", input)
			assert.Equal(t, types.Code(err1), types.Code(err2), "input %q", input)
			continue
		}
		require.NoError(t, err2, "input %q", input)
		assert.Equal(t, math.Float64bits(v1), math.Float64bits(v2), "input %q", input)
	}
}

func TestCanonicalFormRoundTrip(t *testing.T) {
	inputs := []string{
		"42",
		"3.14",
		"-5",
		"--5",
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"10 - 5 - 2",
		"20 / 4 / 2",
		"-(2 + 3)",
		"((2 + 3) * 4 - 5) / 6",
	}

	for _, input := range inputs {
		node, err := gocompute.Parse(input)
		require.NoError(t, err, "input %q", input)

		canonical := node.String()
		again, err := gocompute.Parse(canonical)
		require.NoError(t, err, "canonical form %q of %q", canonical, input)

		v1, err1 := gocompute.Evaluate(input)
		v2, err2 := gocompute.Evaluate(again.String())
		require.NoError(t, err1, "input %q", input)
		require.NoError(t, err2, "canonical %q", canonical)
		assert.InDelta(t, v1, v2, 1e-9, "input %q canonical %q", input, canonical)
	}
}

func TestParseShapes(t *testing.T) {
	node, err := gocompute.Parse("2 + 3")
	require.NoError(t, err)
	require.Equal(t, types.NodeAdd, node.Type)
	assert.Equal(t, "(2 + 3)", node.String())
}

func TestMustParse(t *testing.T) {
	node := gocompute.MustParse("1 + 1")
	assert.Equal(t, types.NodeAdd, node.Type)

	assert.Panics(t, func() {
		gocompute.MustParse("1 +")
	})
}

func TestEvaluateBatchWithExpressions(t *testing.T) {
	e1, ok := types.NewExpression("2 + 2")
	require.True(t, ok)
	e2, ok := types.NewExpression("9 / 3")
	require.True(t, ok)

	results := gocompute.EvaluateBatch([]types.Expression{e1, e2})
	require.Len(t, results, 2)
	assert.Equal(t, 4.0, results[0].Value)
	assert.Equal(t, 3.0, results[1].Value)
	// The original text is preserved on the result, whitespace included.
	assert.Equal(t, "2 + 2", results[0].Expression.Source())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, gocompute.Version())
}
