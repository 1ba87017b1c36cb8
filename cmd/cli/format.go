package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charithe/infixcalc/pkg/calculator"
	"github.com/shopspring/decimal"
)

// formatValue renders a result as the shortest decimal that round-trips.
// Uncommitted infinities and NaNs are shown as "+Inf", "-Inf" or "NaN".
func formatValue(r calculator.Result) string {
	if r.Kind == calculator.ResultError {
		return "Error"
	}

	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	}

	return decimal.NewFromFloat(r.Value).String()
}

// formatDisplay renders a status line: angle mode, open bracket depth, last
// operator and the value. Intermediate values are marked with a trailing "…".
func formatDisplay(d calculator.Display) string {
	value := formatValue(d.Result)
	if d.Result.Kind == calculator.ResultIntermediate {
		value += " …"
	}

	return fmt.Sprintf("%s %-6s %-6s %s",
		strings.ToUpper(d.AngleMode.String()),
		strings.Repeat("(", d.OpenBrackets),
		d.LastOperator,
		value)
}
