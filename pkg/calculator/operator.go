package calculator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Operator identifies a binary or unary calculator operation.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Power

	Negate
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log10
	Ln
	Sqrt
	Square
	Pow10
	Inverse
	Exp
	Abs
	Percent
)

// unaryTier is the tier of every unary operator. Unary operators are never deferred.
const unaryTier = 4

type operatorDef struct {
	symbol string
	tier   int
	binary func(a, b float64) float64
	unary  func(v float64, mode AngleMode) float64
}

var operators = map[Operator]operatorDef{
	Add:      {symbol: "+", tier: 1, binary: func(a, b float64) float64 { return a + b }},
	Subtract: {symbol: "-", tier: 1, binary: func(a, b float64) float64 { return a - b }},
	Multiply: {symbol: "*", tier: 2, binary: func(a, b float64) float64 { return a * b }},
	Divide:   {symbol: "/", tier: 2, binary: func(a, b float64) float64 { return a / b }},
	Power:    {symbol: "^", tier: 3, binary: math.Pow},

	Negate:  {symbol: "neg", tier: unaryTier, unary: plain(func(v float64) float64 { return -v })},
	Sin:     {symbol: "sin", tier: unaryTier, unary: trig(math.Sin)},
	Cos:     {symbol: "cos", tier: unaryTier, unary: trig(math.Cos)},
	Tan:     {symbol: "tan", tier: unaryTier, unary: trig(math.Tan)},
	Asin:    {symbol: "asin", tier: unaryTier, unary: inverseTrig(math.Asin)},
	Acos:    {symbol: "acos", tier: unaryTier, unary: inverseTrig(math.Acos)},
	Atan:    {symbol: "atan", tier: unaryTier, unary: inverseTrig(math.Atan)},
	Log10:   {symbol: "log", tier: unaryTier, unary: plain(math.Log10)},
	Ln:      {symbol: "ln", tier: unaryTier, unary: plain(math.Log)},
	Sqrt:    {symbol: "sqrt", tier: unaryTier, unary: plain(math.Sqrt)},
	Square:  {symbol: "square", tier: unaryTier, unary: plain(func(v float64) float64 { return v * v })},
	Pow10:   {symbol: "pow10", tier: unaryTier, unary: plain(func(v float64) float64 { return math.Pow(10, v) })},
	Inverse: {symbol: "inv", tier: unaryTier, unary: plain(func(v float64) float64 { return 1 / v })},
	Exp:     {symbol: "exp", tier: unaryTier, unary: plain(math.Exp)},
	Abs:     {symbol: "abs", tier: unaryTier, unary: plain(math.Abs)},
	Percent: {symbol: "%", tier: unaryTier, unary: plain(func(v float64) float64 { return v / 100 })},
}

var operatorsBySymbol = func() map[string]Operator {
	m := make(map[string]Operator, len(operators))
	for op, def := range operators {
		m[def.symbol] = op
	}
	return m
}()

func plain(f func(float64) float64) func(float64, AngleMode) float64 {
	return func(v float64, _ AngleMode) float64 { return f(v) }
}

func trig(f func(float64) float64) func(float64, AngleMode) float64 {
	return func(v float64, mode AngleMode) float64 {
		if mode == Degree {
			v = v * math.Pi / 180
		}
		return f(v)
	}
}

func inverseTrig(f func(float64) float64) func(float64, AngleMode) float64 {
	return func(v float64, mode AngleMode) float64 {
		r := f(v)
		if mode == Degree {
			r = r * 180 / math.Pi
		}
		return r
	}
}

// LookupOperator returns the operator written as symbol, if any.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := operatorsBySymbol[symbol]
	return op, ok
}

func (op Operator) def() operatorDef {
	def, ok := operators[op]
	if !ok {
		panic(fmt.Sprintf("unknown operator: %d", int(op)))
	}
	return def
}

// Tier returns the precedence tier of the operator. Higher tiers bind tighter.
func (op Operator) Tier() int {
	return op.def().tier
}

// IsUnary reports whether the operator takes a single operand.
func (op Operator) IsUnary() bool {
	return op.def().unary != nil
}

func (op Operator) String() string {
	if def, ok := operators[op]; ok {
		return def.symbol
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

func (op Operator) applyUnary(v float64, mode AngleMode) float64 {
	return op.def().unary(v, mode)
}

func (op Operator) applyBinary(a, b float64) float64 {
	return op.def().binary(a, b)
}

// AngleMode selects how trigonometric operators interpret their operands.
type AngleMode int

const (
	Degree AngleMode = iota
	Radian
)

func (m AngleMode) String() string {
	switch m {
	case Degree:
		return "deg"
	case Radian:
		return "rad"
	default:
		return fmt.Sprintf("AngleMode(%d)", int(m))
	}
}

// ParseAngleMode accepts "deg" or "rad".
func ParseAngleMode(s string) (AngleMode, error) {
	switch s {
	case "deg":
		return Degree, nil
	case "rad":
		return Radian, nil
	default:
		return Degree, errors.Errorf("unknown angle mode: %q", s)
	}
}
