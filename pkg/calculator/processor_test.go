package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestProcessorEvaluate(t *testing.T) {
	testCases := []struct {
		name       string
		expr       string
		angleMode  AngleMode
		wantResult float64
	}{
		{name: "precedence", expr: "2+3*(4+5-6)-(2+3)/(1+1)", wantResult: 8.5},
		{name: "multiplyBeforeAdd", expr: "1 + 2 * 3", wantResult: 7},
		{name: "leftAssociativeSubtract", expr: "10 - 4 - 3", wantResult: 3},
		{name: "leftAssociativePower", expr: "2 ^ 3 ^ 2", wantResult: 64},
		{name: "powerBeforeMultiply", expr: "3 * 2 ^ 3", wantResult: 24},
		{name: "digitGroups", expr: "1_000 + 1", wantResult: 1001},
		{name: "leadingOperatorInBracket", expr: "(-3) * 2", wantResult: -6},
		{name: "nestedBrackets", expr: "((2))", wantResult: 2},
		{name: "emptyBrackets", expr: "( )", wantResult: 0},
		{name: "addEmptyBrackets", expr: "2 + ( )", wantResult: 2},
		{name: "extraCloseBracket", expr: "2 + )", wantResult: 2},
		{name: "multiplyEmptyBrackets", expr: "2 * ()", wantResult: 0},
		{name: "implicitMultiply", expr: "2(3)4", wantResult: 24},
		{name: "implicitMultiplyGroups", expr: "(1+2)(3+4)", wantResult: 21},
		{name: "closeBracketThenOperand", expr: "(2) 3", wantResult: 6},
		{name: "negate", expr: "1.5 neg", wantResult: -1.5},
		{name: "doubleNegate", expr: "1.5 neg neg", wantResult: 1.5},
		{name: "latestOperandWins", expr: "2 3", wantResult: 3},
		{name: "latestOperatorWins", expr: "2 + * 3", wantResult: 6},
		{name: "operandReplacesUnaryResult", expr: "4 sqrt 9", wantResult: 9},
		{name: "unaryBindsTightest", expr: "3 square + 4 square sqrt", wantResult: 13},
		{name: "percent", expr: "50 %", wantResult: 0.5},
		{name: "percentOfValue", expr: "200 * 10 %", wantResult: 20},
		{name: "inverse", expr: "1 / 4 inv", wantResult: 4},
		{name: "log10", expr: "100 log", wantResult: 2},
		{name: "ln", expr: "E ln", wantResult: 1},
		{name: "pow10", expr: "2 pow10", wantResult: 100},
		{name: "exp", expr: "0 exp", wantResult: 1},
		{name: "abs", expr: "5 neg abs", wantResult: 5},
		{name: "pi", expr: "2 * PI", wantResult: 2 * math.Pi},
		{name: "cosDegrees", expr: "90 cos", wantResult: 0},
		{name: "sinDegrees", expr: "30 sin", wantResult: 0.5},
		{name: "atanDegrees", expr: "1 atan", wantResult: 45},
		{name: "asinDegrees", expr: "0.5 asin", wantResult: 30},
		{name: "cosRadians", expr: "PI cos", angleMode: Radian, wantResult: -1},
		{name: "acosRoundTrip", expr: "0.5 cos acos", angleMode: Radian, wantResult: 0.5},
		{name: "unclosedBrackets", expr: "(((", wantResult: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			proc := NewProcessor()
			proc.UseAngleMode(tc.angleMode)
			require.NoError(t, proc.ParseAndPush(tc.expr))

			haveResult, err := proc.Eval()
			require.NoError(t, err)
			require.Equal(t, ResultFinal, haveResult.Kind)
			require.InDelta(t, tc.wantResult, haveResult.Value, tolerance)
		})
	}
}

func TestProcessorResult(t *testing.T) {
	t.Run("initial", func(t *testing.T) {
		require.Equal(t, Result{Kind: ResultFinal}, NewProcessor().Result())
	})

	t.Run("intermediate", func(t *testing.T) {
		proc := NewProcessor()
		require.NoError(t, proc.ParseAndPush("2 + 3"))
		require.Equal(t, Result{Kind: ResultIntermediate, Value: 3}, proc.Result())
	})

	t.Run("insideBracket", func(t *testing.T) {
		proc := NewProcessor()
		require.NoError(t, proc.ParseAndPush("2 + ("))
		require.Equal(t, Result{Kind: ResultIntermediate}, proc.Result())
		require.Equal(t, 1, proc.OpenBrackets())

		// the bracket stops being on top once an operator follows it
		require.NoError(t, proc.ParseAndPush("5 +"))
		require.Equal(t, Result{Kind: ResultIntermediate, Value: 5}, proc.Result())

		require.NoError(t, proc.Push("("))
		require.Equal(t, Result{Kind: ResultIntermediate}, proc.Result())
		require.Equal(t, 2, proc.OpenBrackets())

		partial, ok := proc.Partial()
		require.True(t, ok)
		require.Equal(t, 5.0, partial)
	})

	t.Run("final", func(t *testing.T) {
		proc := NewProcessor()
		require.NoError(t, proc.ParseAndPush("2 + 3 ="))
		require.Equal(t, Result{Kind: ResultFinal, Value: 5}, proc.Result())

		_, ok := proc.Partial()
		require.False(t, ok)
	})

	t.Run("divideByZero", func(t *testing.T) {
		proc := NewProcessor()
		require.NoError(t, proc.ParseAndPush("1 / 0"))
		r, err := proc.Eval()
		require.Equal(t, ErrNumeric, err)
		require.Equal(t, ResultError, r.Kind)
		require.True(t, math.IsInf(r.Value, 1))
	})

	t.Run("overflowingLiteral", func(t *testing.T) {
		proc := NewProcessor()
		require.NoError(t, proc.Push("1e400"))
		require.Equal(t, ResultIntermediate, proc.Result().Kind)
		require.True(t, math.IsInf(proc.Result().Value, 1))

		r, err := proc.Eval()
		require.Equal(t, ErrNumeric, err)
		require.Equal(t, ResultError, r.Kind)
	})

	for _, expr := range []string{"0 / 0", "/()"} {
		t.Run("nan "+expr, func(t *testing.T) {
			proc := NewProcessor()
			require.NoError(t, proc.ParseAndPush(expr))
			proc.Evaluate()
			require.Equal(t, ResultError, proc.Result().Kind)

			// further entry keeps reporting the error until a new result is committed
			require.NoError(t, proc.Push("5"))
			require.Equal(t, ResultError, proc.Result().Kind)

			proc.Reset()
			require.Equal(t, Result{Kind: ResultFinal}, proc.Result())
		})
	}
}

func TestProcessorEvaluateIdempotent(t *testing.T) {
	proc := NewProcessor()
	require.NoError(t, proc.ParseAndPush("4 * (2 + 1)"))

	proc.Evaluate()
	first := proc.Result()
	proc.Evaluate()
	require.Equal(t, first, proc.Result())
	require.Equal(t, Result{Kind: ResultFinal, Value: 12}, first)
}

func TestProcessorReset(t *testing.T) {
	proc := NewProcessor()
	proc.UseAngleMode(Radian)
	require.NoError(t, proc.ParseAndPush("5 * 3 = + (2"))

	proc.Reset()
	require.Equal(t, Result{Kind: ResultFinal}, proc.Result())
	require.Equal(t, 0, proc.OpenBrackets())
	_, ok := proc.LastOperator()
	require.False(t, ok)
	require.Equal(t, Radian, proc.AngleMode())
}

func TestProcessorChainedEntry(t *testing.T) {
	proc := NewProcessor()
	require.NoError(t, proc.ParseAndPush("2 + 3 ="))
	require.Equal(t, 5.0, proc.Result().Value)

	require.NoError(t, proc.ParseAndPush("+ 5 ="))
	require.Equal(t, Result{Kind: ResultFinal, Value: 10}, proc.Result())

	require.NoError(t, proc.ParseAndPush("* 3 ="))
	require.Equal(t, Result{Kind: ResultFinal, Value: 30}, proc.Result())

	require.NoError(t, proc.ParseAndPush("90 = sin"))
	require.Equal(t, ResultIntermediate, proc.Result().Kind)
	require.InDelta(t, 1, proc.Result().Value, tolerance)

	r, err := proc.Eval()
	require.NoError(t, err)
	require.Equal(t, ResultFinal, r.Kind)
	require.InDelta(t, 1, r.Value, tolerance)
}

func TestProcessorAngleMode(t *testing.T) {
	proc := NewProcessor()
	require.Equal(t, Degree, proc.AngleMode())
	require.NoError(t, proc.ParseAndPush("90 cos"))
	require.InDelta(t, 0, proc.Result().Value, tolerance)

	proc.Reset()
	proc.UseAngleMode(Radian)
	require.NoError(t, proc.ParseAndPush("0.5 cos"))
	require.NoError(t, proc.ParseAndPush("acos"))
	require.InDelta(t, 0.5, proc.Result().Value, tolerance)
}

func TestProcessorLastOperator(t *testing.T) {
	proc := NewProcessor()
	_, ok := proc.LastOperator()
	require.False(t, ok)

	require.NoError(t, proc.ParseAndPush("2 +"))
	op, ok := proc.LastOperator()
	require.True(t, ok)
	require.Equal(t, "+", op)

	require.NoError(t, proc.Push("3"))
	_, ok = proc.LastOperator()
	require.False(t, ok)

	require.NoError(t, proc.Push("sqrt"))
	op, _ = proc.LastOperator()
	require.Equal(t, "sqrt", op)

	require.NoError(t, proc.Push("="))
	_, ok = proc.LastOperator()
	require.False(t, ok)
}

func TestProcessorInvalidUnit(t *testing.T) {
	proc := NewProcessor()
	require.NoError(t, proc.ParseAndPush("2 + 3"))
	before := proc.Display()

	err := proc.Push("abc")
	require.Error(t, err)
	require.True(t, IsInvalidUnit(err))
	require.Equal(t, before, proc.Display())

	err = proc.ParseAndPush("* foo 4")
	require.True(t, IsInvalidUnit(err))
	require.Equal(t, "foo", err.(*InvalidUnitError).Token)

	// the operator before the invalid token stays pushed
	op, _ := proc.LastOperator()
	require.Equal(t, "*", op)
}

func TestProcessorSnapshot(t *testing.T) {
	proc := NewProcessor()
	require.NoError(t, proc.ParseAndPush("2 + 3 * ("))
	snap := proc.Backup()
	want := proc.Display()

	require.NoError(t, proc.ParseAndPush("4 ) = 7 neg"))
	proc.UseAngleMode(Radian)
	require.NotEqual(t, want, proc.Display())

	proc.Restore(snap)
	require.Equal(t, want, proc.Display())

	// mutating the restored state must not leak into the snapshot
	require.NoError(t, proc.ParseAndPush("1 ) ="))
	require.Equal(t, Result{Kind: ResultFinal, Value: 5}, proc.Result())

	proc.Restore(snap)
	require.Equal(t, want, proc.Display())
	require.NoError(t, proc.ParseAndPush("2 ) ="))
	require.Equal(t, Result{Kind: ResultFinal, Value: 8}, proc.Result())
}

func TestEngineLeftoverOperandsPanic(t *testing.T) {
	e := &engine{evaluated: []float64{1, 2}}
	require.Panics(t, e.evaluate)
}

func TestEnginePendingHoldsNoUnaryOperators(t *testing.T) {
	e := &engine{}
	for _, tok := range []string{"2", "+", "(", "3", "sqrt", "*", "4", "neg", "^", "2"} {
		u, err := ParseUnit(tok)
		require.NoError(t, err)
		e.push(u)

		for _, p := range e.pending {
			require.False(t, p.isUnaryOperator(), "unary operator deferred after %q", tok)
			require.NotEqual(t, KindOperand, p.Kind)
		}
	}
}
