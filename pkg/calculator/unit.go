package calculator

import (
	"fmt"
	"math"
	"strconv"
)

// UnitKind discriminates the variants of Unit.
type UnitKind int

const (
	KindOpenBracket UnitKind = iota
	KindCloseBracket
	KindOperand
	KindOperator
)

// Unit is one indivisible piece of calculator input. Only the field matching
// Kind is meaningful.
type Unit struct {
	Kind  UnitKind
	Value float64
	Op    Operator
}

var (
	OpenBracket  = Unit{Kind: KindOpenBracket}
	CloseBracket = Unit{Kind: KindCloseBracket}
)

// NewOperand returns an operand unit holding v.
func NewOperand(v float64) Unit {
	return Unit{Kind: KindOperand, Value: v}
}

// NewOperator returns an operator unit for op.
func NewOperator(op Operator) Unit {
	return Unit{Kind: KindOperator, Op: op}
}

func (u Unit) isBinaryOperator() bool {
	return u.Kind == KindOperator && !u.Op.IsUnary()
}

func (u Unit) isUnaryOperator() bool {
	return u.Kind == KindOperator && u.Op.IsUnary()
}

func (u Unit) String() string {
	switch u.Kind {
	case KindOpenBracket:
		return "("
	case KindCloseBracket:
		return ")"
	case KindOperand:
		return strconv.FormatFloat(u.Value, 'g', -1, 64)
	case KindOperator:
		return u.Op.String()
	default:
		return fmt.Sprintf("Unit(%d)", int(u.Kind))
	}
}

var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
}

// ParseUnit resolves a single token to a Unit. The evaluate marker "=" is not
// a unit and is rejected here; Processor.Push handles it.
func ParseUnit(token string) (Unit, error) {
	switch token {
	case "(":
		return OpenBracket, nil
	case ")":
		return CloseBracket, nil
	}

	if op, ok := LookupOperator(token); ok {
		return NewOperator(op), nil
	}

	if v, ok := constants[token]; ok {
		return NewOperand(v), nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil && !isRangeError(err) {
		return Unit{}, &InvalidUnitError{Token: token}
	}

	return NewOperand(v), nil
}

// isRangeError reports whether a float literal overflowed. ParseFloat still
// returns ±Inf for it, which is a valid operand.
func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
