package main

import (
	"math"
	"testing"

	"github.com/charithe/infixcalc/pkg/calculator"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		name      string
		result    calculator.Result
		wantValue string
	}{
		{name: "integer", result: calculator.Result{Value: 24}, wantValue: "24"},
		{name: "fraction", result: calculator.Result{Value: 8.5}, wantValue: "8.5"},
		{name: "negative", result: calculator.Result{Kind: calculator.ResultIntermediate, Value: -1.5}, wantValue: "-1.5"},
		{name: "shortestRepresentation", result: calculator.Result{Value: 0.1 + 0.2}, wantValue: "0.30000000000000004"},
		{name: "error", result: calculator.Result{Kind: calculator.ResultError, Value: math.NaN()}, wantValue: "Error"},
		{name: "intermediatePositiveInfinity", result: calculator.Result{Kind: calculator.ResultIntermediate, Value: math.Inf(1)}, wantValue: "+Inf"},
		{name: "intermediateNegativeInfinity", result: calculator.Result{Kind: calculator.ResultIntermediate, Value: math.Inf(-1)}, wantValue: "-Inf"},
		{name: "intermediateNaN", result: calculator.Result{Kind: calculator.ResultIntermediate, Value: math.NaN()}, wantValue: "NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantValue, formatValue(tc.result))
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	d := calculator.Display{
		Result:       calculator.Result{Kind: calculator.ResultIntermediate, Value: 3},
		LastOperator: "+",
		OpenBrackets: 2,
		AngleMode:    calculator.Radian,
	}
	require.Equal(t, "RAD ((     +      3 …", formatDisplay(d))

	d = calculator.Display{Result: calculator.Result{Value: 5}}
	require.Equal(t, "DEG               5", formatDisplay(d))
}

func TestLocalSession(t *testing.T) {
	sess := newLocalSession(4)

	display, err := runLine(sess, "2 * (3")
	require.NoError(t, err)
	require.Equal(t, 1, display.OpenBrackets)

	display, err = runLine(sess, "+ 1) =")
	require.NoError(t, err)
	require.Equal(t, calculator.Result{Kind: calculator.ResultFinal, Value: 8}, display.Result)

	display, err = runLine(sess, "+ bogus")
	require.True(t, calculator.IsInvalidUnit(err))
	require.Equal(t, calculator.Result{Kind: calculator.ResultFinal, Value: 8}, display.Result)

	display, err = runLine(sess, ":undo")
	require.NoError(t, err)
	require.Equal(t, 1, display.OpenBrackets)

	display, err = runLine(sess, ":rad")
	require.NoError(t, err)
	require.Equal(t, calculator.Radian, display.AngleMode)

	display, err = runLine(sess, ":reset")
	require.NoError(t, err)
	require.Equal(t, calculator.Result{Kind: calculator.ResultFinal}, display.Result)
	require.Equal(t, calculator.Radian, display.AngleMode)

	require.NoError(t, sess.Close())
}

func TestLocalSessionNumericFaults(t *testing.T) {
	testCases := []struct {
		line        string
		wantDisplay string
	}{
		{line: "0 inv", wantDisplay: "DEG        inv    +Inf …"},
		{line: "0 - 1 = sqrt", wantDisplay: "DEG        sqrt   NaN …"},
		{line: "1 / 0 =", wantDisplay: "DEG               Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			display, err := runLine(newLocalSession(4), tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.wantDisplay, formatDisplay(display))
		})
	}
}
